package api

// swagger:model api.CreateCriterionRequest
type CreateCriterionRequest struct {
	Name string `form:"name" validate:"required" example:"Презентация"`
}
