package api

// swagger:model api.CreateOrganizationRequest
type CreateOrganizationRequest struct {
	Name        string `form:"name" validate:"required" example:"Acme"`
	Code        string `form:"code" validate:"required" example:"001"`
	Address     string `form:"address" example:"Main st. 1"`
	ContactName string `form:"contact_name" example:"Ivanov I.I."`
	Position    string `form:"position" example:"Manager"`
	Phone       string `form:"phone" example:"+7 900 000-00-00"`
}
