// Package analytics 將扁平的績效紀錄彙整成三種檢視：
// 個人（逐日序列）、總覽（每人總數）、合併（每人每項準則）。
// 所有函式皆為純函式，每次請求都從完整紀錄重新計算。
package analytics

import (
	"time"

	"perf-analytics/internal/model"
)

const dayFormat = "02.01.2006"

// FilterByRange 篩選事件日期落在 [start, end] 的紀錄。
// 比較使用完整時間戳精度，不會向日界對齊；整日範圍由呼叫端負責把
// end 延伸到當日結尾。日期無法解析的紀錄視為不在任何範圍內。
func FilterByRange(logs []model.LogEntry, start, end time.Time) []model.LogEntry {
	out := make([]model.LogEntry, 0, len(logs))
	for _, entry := range logs {
		t, ok := model.ParseTimestamp(entry.Date)
		if !ok {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// StartOfDay 回傳當日 00:00:00.000
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 回傳當日 23:59:59.999
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
