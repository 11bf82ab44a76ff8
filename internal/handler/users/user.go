package users

import (
	"net/http"
	"strconv"

	"perf-analytics/internal/api"
	"perf-analytics/internal/middleware"
	"perf-analytics/internal/model"
	"perf-analytics/internal/service"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     List users
// @Description 回傳完整名冊（登入頁的使用者選單也使用此端點）
// @Tags        users
// @Produce     json
// @Success     200 {array} model.User
// @Router      /users [get]
func ListUsersHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.Users())
	}
}

// @Summary     Create a new user
// @Description 建立使用者，role 省略時預設為 user
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name formData string true  "使用者姓名"
// @Param       role formData string false "角色 (admin/user)"
// @Success     201  {object} model.User
// @Failure     400  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		role := model.Role(req.Role)
		if role == "" {
			role = model.RoleUser
		}

		user := st.AddUser(req.Name, role)
		return c.JSON(http.StatusCreated, user)
	}
}

// @Summary     Delete a user by ID
// @Description 依 ID 移除使用者。管理員帳號不可移除；歷史紀錄保留該名稱。
// @Tags        users
// @Param       user_id path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, ok := st.UserByID(id)
		if !ok {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if user.IsAdmin() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "cannot remove an admin account"})
		}
		st.RemoveUser(id)
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        users
// @Produce     json
// @Success     200 {object} model.User
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, found := st.UserByID(claims.UserID)
		if !found {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, user)
	}
}
