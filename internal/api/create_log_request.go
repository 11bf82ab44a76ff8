package api

// CreateLogRequest 新增績效紀錄。date 為事件日期（dd.MM.yyyy），
// 可回填過去日期，留空時取現在。
// swagger:model api.CreateLogRequest
type CreateLogRequest struct {
	Criterion    string `form:"criterion" validate:"required" example:"Презентация"`
	Organization string `form:"organization" validate:"required" example:"Acme"`
	Comment      string `form:"comment" example:"follow-up call"`
	Date         string `form:"date" example:"02.01.2024"`
}
