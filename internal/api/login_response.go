package api

import "perf-analytics/internal/model"

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}
