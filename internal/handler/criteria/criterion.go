package criteria

import (
	"net/http"

	"perf-analytics/internal/api"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     List criteria
// @Description 回傳全部準則（維持插入順序）
// @Tags        criteria
// @Produce     json
// @Success     200 {array} string
// @Security    ApiKeyAuth
// @Router      /criteria [get]
func ListCriteriaHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.Criteria())
	}
}

// @Summary     Create a criterion
// @Description 新增準則；名稱重複時不做任何事
// @Tags        criteria
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name formData string true "準則名稱"
// @Success     201  {object} api.CreateCriterionRequest
// @Failure     400  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /criteria [post]
func CreateCriterionHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCriterionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		st.AddCriterion(req.Name)
		return c.JSON(http.StatusCreated, req)
	}
}

// @Summary     Delete a criterion by name
// @Description 移除準則。引用它的紀錄不會連動刪除。
// @Tags        criteria
// @Param       name path string true "準則名稱"
// @Success     204 "No Content"
// @Security    ApiKeyAuth
// @Router      /criteria/{name} [delete]
func DeleteCriterionHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		st.RemoveCriterion(c.Param("name"))
		return c.NoContent(http.StatusNoContent)
	}
}
