package analytics

import (
	"errors"
	"time"

	"perf-analytics/internal/model"
)

// ViewMode 選擇要套用的彙整器
type ViewMode string

const (
	ViewPersonal ViewMode = "personal"
	ViewGeneral  ViewMode = "general"
	ViewCombined ViewMode = "combined"
)

// ErrUnknownView is returned by Dataset for view modes it does not know.
var ErrUnknownView = errors.New("unknown view mode")

// Dataset 完整的資料流程：先依日期範圍篩選，再交給檢視模式對應的
// 彙整器，回傳可直接餵給圖表的資料列。user 只在個人檢視有意義。
func Dataset(mode ViewMode, logs []model.LogEntry, users []model.User, criteria []string, user string, start, end time.Time) (any, error) {
	filtered := FilterByRange(logs, start, end)
	switch mode {
	case ViewPersonal:
		return PersonalSeries(filtered, user, criteria, start, end), nil
	case ViewGeneral:
		return GeneralTotals(filtered, users), nil
	case ViewCombined:
		return CombinedBreakdown(filtered, users, criteria), nil
	default:
		return nil, ErrUnknownView
	}
}
