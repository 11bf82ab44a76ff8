// File: internal/handler/auth/login.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"perf-analytics/internal/api"
	"perf-analytics/internal/service"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

var issueAccessToken = service.IssueAccessToken

// LoginHandler 從名冊選擇使用者登入並回傳 JWT。本系統沒有密碼，
// 登入即是身份選擇；選定的使用者紀錄會保存為目前登入者。
// @Summary     登入使用者
// @Description 以 user_id 從名冊選擇使用者，回傳存取令牌
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       user_id formData int true "使用者 ID"
// @Success     200     {object} api.LoginResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     401     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, ok := st.UserByID(req.UserID)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user not found"})
		}

		token, err := issueAccessToken(user, 24*time.Hour)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}

		if err := st.SetCurrentUser(c.Request().Context(), user); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: fmt.Sprintf("failed to save session: %v", err)})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, User: user})
	}
}

// LogoutHandler 清除目前登入者
// @Summary     登出使用者
// @Tags        auth
// @Success     204 "No Content"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := st.ClearCurrentUser(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
