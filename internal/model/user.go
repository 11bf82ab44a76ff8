// File: internal/model/user.go
package model

// Role 使用者角色：admin 可管理名冊與檢視所有報表，user 只能輸入與檢視個人資料
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin 回傳使用者是否為管理員
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
