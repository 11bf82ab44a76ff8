package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	UserID int64 `form:"user_id" validate:"required" example:"1"`
}
