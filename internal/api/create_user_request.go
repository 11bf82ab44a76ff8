package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name string `form:"name" validate:"required" example:"Alice"`
	Role string `form:"role" validate:"omitempty,oneof=admin user" example:"user"`
}
