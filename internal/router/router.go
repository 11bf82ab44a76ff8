// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"perf-analytics/internal/handler"
	"perf-analytics/internal/handler/auth"
	"perf-analytics/internal/handler/criteria"
	"perf-analytics/internal/handler/logs"
	"perf-analytics/internal/handler/organizations"
	"perf-analytics/internal/handler/users"
	"perf-analytics/internal/kv"
	"perf-analytics/internal/middleware"
	"perf-analytics/internal/store"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, st *store.Store, kvs kv.KV) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(kvs), middleware.RequireAuth)

	// 登入即從名冊選擇使用者，名冊因此對登入頁公開
	api.GET("/users", users.ListUsersHandler(st))
	api.POST("/auth/login", auth.LoginHandler(st))
	api.POST("/auth/logout", auth.LogoutHandler(st), middleware.RequireAuth)
	api.GET("/users/me", users.GetMyUserHandler(st), middleware.RequireAuth)

	// 管理員專屬名冊與準則維護
	api.POST("/users", users.CreateUserHandler(st), middleware.RequireAdmin)
	api.DELETE("/users/:user_id", users.DeleteUserHandler(st), middleware.RequireAdmin)
	api.GET("/criteria", criteria.ListCriteriaHandler(st), middleware.RequireAuth)
	api.POST("/criteria", criteria.CreateCriterionHandler(st), middleware.RequireAdmin)
	api.DELETE("/criteria/:name", criteria.DeleteCriterionHandler(st), middleware.RequireAdmin)

	// 組織：任何登入者可建立，移除限管理員
	api.GET("/organizations", organizations.ListOrganizationsHandler(st), middleware.RequireAuth)
	api.POST("/organizations", organizations.CreateOrganizationHandler(st), middleware.RequireAuth)
	api.DELETE("/organizations/:org_id", organizations.DeleteOrganizationHandler(st), middleware.RequireAdmin)

	// 績效紀錄：追加與檢視
	api.POST("/logs", logs.CreateLogHandler(st), middleware.RequireAuth)
	api.GET("/logs", logs.ListLogsHandler(st), middleware.RequireAuth)

	// 分析檢視
	api.GET("/analytics/:view", handler.AnalyticsHandler(st), middleware.RequireAuth)
	api.GET("/analytics/personal/logs", handler.PersonalLogsHandler(st), middleware.RequireAuth)
}
