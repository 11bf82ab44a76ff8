package organizations

import (
	"net/http"
	"strconv"

	"perf-analytics/internal/api"
	"perf-analytics/internal/model"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     List organizations
// @Tags        organizations
// @Produce     json
// @Success     200 {array} model.Organization
// @Security    ApiKeyAuth
// @Router      /organizations [get]
func ListOrganizationsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.Organizations())
	}
}

// @Summary     Create an organization
// @Description 建立組織。code 或名稱（不分大小寫）與現有組織重複時回傳 409，
// @Description 訊息同時列出兩種可能原因，不區分是哪一種。
// @Tags        organizations
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name         formData string true  "組織名稱"
// @Param       code         formData string true  "組織代碼"
// @Param       address      formData string false "地址"
// @Param       contact_name formData string false "聯絡人"
// @Param       position     formData string false "職稱"
// @Param       phone        formData string false "電話"
// @Success     201 {object} model.Organization
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /organizations [post]
func CreateOrganizationHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateOrganizationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		org, ok := st.AddOrganization(model.Organization{
			Name:        req.Name,
			Code:        req.Code,
			Address:     req.Address,
			ContactName: req.ContactName,
			Position:    req.Position,
			Phone:       req.Phone,
		})
		if !ok {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "organization with the same name or code already exists"})
		}
		return c.JSON(http.StatusCreated, org)
	}
}

// @Summary     Delete an organization by ID
// @Tags        organizations
// @Param       org_id path int true "組織 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /organizations/{org_id} [delete]
func DeleteOrganizationHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("org_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid organization ID"})
		}
		st.RemoveOrganization(id)
		return c.NoContent(http.StatusNoContent)
	}
}
