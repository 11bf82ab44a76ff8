// File: internal/handler/analytics.go
package handler

import (
	"errors"
	"net/http"
	"time"

	"perf-analytics/internal/analytics"
	"perf-analytics/internal/api"
	"perf-analytics/internal/middleware"
	"perf-analytics/internal/service"
	"perf-analytics/internal/store"

	"github.com/labstack/echo/v4"
)

const rangeFormat = "02.01.2006"

// parseRange 解析 from/to 查詢參數（dd.MM.yyyy）。
// from 對齊當日開頭；to 延伸到當日結尾，整日範圍才會涵蓋整日。
// 預設範圍為最近一個月到現在。
func parseRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, -1, 0)
	end := now

	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse(rangeFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from date")
		}
		start = analytics.StartOfDay(t)
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse(rangeFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to date")
		}
		end = analytics.EndOfDay(t)
	}
	return start, end, nil
}

// selectedUser 決定個人檢視的對象：管理員可用 user 參數指定任何員工，
// 一般使用者固定鎖在自己名下。
func selectedUser(c echo.Context, claims *service.CustomClaims) string {
	if !claims.IsAdmin {
		return claims.Name
	}
	return c.QueryParam("user")
}

// AnalyticsHandler 依檢視模式回傳圖表資料列
// @Summary     Analytics dataset
// @Description 依檢視模式（personal/general/combined）回傳彙整後的圖表資料
// @Tags        analytics
// @Produce     json
// @Param       view      path  string true  "檢視模式" Enums(personal, general, combined)
// @Param       from      query string false "起始日期 (dd.MM.yyyy)"
// @Param       to        query string false "結束日期 (dd.MM.yyyy)"
// @Param       user      query string false "員工名稱（僅管理員有效）"
// @Success     200 {array} object
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /analytics/{view} [get]
func AnalyticsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		mode := analytics.ViewMode(c.Param("view"))
		// 合併檢視只開放給管理員，與前端行為一致
		if mode == analytics.ViewCombined && !claims.IsAdmin {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "admin privileges required"})
		}

		start, end, err := parseRange(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		data, err := analytics.Dataset(mode, st.Logs(), st.Users(), st.Criteria(), selectedUser(c, claims), start, end)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, data)
	}
}

// PersonalLogsHandler 個人檢視的清單投影
// @Summary     Personal log list
// @Description 依日期分組回傳個人紀錄清單（最新日期在前）
// @Tags        analytics
// @Produce     json
// @Param       from      query string false "起始日期 (dd.MM.yyyy)"
// @Param       to        query string false "結束日期 (dd.MM.yyyy)"
// @Param       user      query string false "員工名稱（僅管理員有效）"
// @Param       criterion query string false "準則名稱，all 表示全部"
// @Success     200 {array} analytics.DayGroup
// @Failure     400 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /analytics/personal/logs [get]
func PersonalLogsHandler(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		start, end, err := parseRange(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		criterion := c.QueryParam("criterion")
		if criterion == "" {
			criterion = analytics.CriterionAll
		}

		filtered := analytics.FilterByRange(st.Logs(), start, end)
		groups := analytics.ListProjection(filtered, selectedUser(c, claims), criterion)
		return c.JSON(http.StatusOK, groups)
	}
}
