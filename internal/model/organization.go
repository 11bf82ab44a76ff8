// File: internal/model/organization.go
package model

type Organization struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Address     string `json:"address"`
	ContactName string `json:"contactName"`
	Position    string `json:"position"`
	Phone       string `json:"phone"`
}
