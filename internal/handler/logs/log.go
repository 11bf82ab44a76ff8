package logs

import (
	"net/http"
	"time"

	"perf-analytics/internal/api"
	"perf-analytics/internal/middleware"
	"perf-analytics/internal/service"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

const dateFormat = "02.01.2006"

// @Summary     List log entries
// @Description 回傳完整的績效紀錄（追加順序）
// @Tags        logs
// @Produce     json
// @Success     200 {array} model.LogEntry
// @Security    ApiKeyAuth
// @Router      /logs [get]
func ListLogsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, st.Logs())
	}
}

// @Summary     Create a log entry
// @Description 以當前使用者名義追加一筆績效紀錄。date 可回填過去日期，
// @Description 留空時取現在；建立後不可修改或刪除。
// @Tags        logs
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       criterion    formData string true  "準則名稱"
// @Param       organization formData string true  "組織名稱"
// @Param       comment      formData string false "備註"
// @Param       date         formData string false "事件日期 (dd.MM.yyyy)"
// @Success     201 {object} model.LogEntry
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /logs [post]
func CreateLogHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateLogRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		var date time.Time
		if req.Date != "" {
			parsed, err := time.Parse(dateFormat, req.Date)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid date"})
			}
			date = parsed
		}

		entry := st.AddLog(claims.Name, req.Criterion, req.Comment, req.Organization, date)
		return c.JSON(http.StatusCreated, entry)
	}
}
