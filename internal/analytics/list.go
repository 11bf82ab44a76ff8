package analytics

import (
	"sort"
	"time"

	"perf-analytics/internal/model"
)

// CriterionAll 表示清單檢視不篩選準則。
const CriterionAll = "all"

// ListEntry 清單檢視中的一筆紀錄。Time 取自 createdAt，
// 缺漏時退回事件日期，兩者皆無法解析則顯示佔位符。
type ListEntry struct {
	ID           int64  `json:"id"`
	Time         string `json:"time"`
	Criterion    string `json:"criterion"`
	Organization string `json:"organization"`
	Comment      string `json:"comment"`
}

// DayGroup 清單檢視中同一天的紀錄群組。
type DayGroup struct {
	Date    string      `json:"date"`
	Entries []ListEntry `json:"entries"`
}

const timePlaceholder = "-"

func displayTime(entry model.LogEntry) string {
	if entry.CreatedAt != "" {
		if t, ok := model.ParseTimestamp(entry.CreatedAt); ok {
			return t.Format("15:04")
		}
	}
	if t, ok := model.ParseTimestamp(entry.Date); ok {
		return t.Format("15:04")
	}
	return timePlaceholder
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ListProjection 個人檢視的清單投影：篩掉其他使用者的紀錄，
// criterion 不為 CriterionAll 時再篩準則，依日曆日分組。
// 群組依日期遞減排序（最新在前，與圖表相反），組內維持原始順序。
// 傳入的 logs 應已先經過 FilterByRange。
func ListProjection(logs []model.LogEntry, user, criterion string) []DayGroup {
	grouped := map[string]*DayGroup{}
	order := []string{}
	for _, entry := range logs {
		if entry.User != user {
			continue
		}
		if criterion != CriterionAll && entry.Criterion != criterion {
			continue
		}
		t, ok := model.ParseTimestamp(entry.Date)
		if !ok {
			continue
		}
		day := t.Format(dayFormat)
		group, ok := grouped[day]
		if !ok {
			group = &DayGroup{Date: day}
			grouped[day] = group
			order = append(order, day)
		}
		group.Entries = append(group.Entries, ListEntry{
			ID:           entry.ID,
			Time:         displayTime(entry),
			Criterion:    entry.Criterion,
			Organization: orDash(entry.Organization.Name()),
			Comment:      orDash(entry.Comment),
		})
	}

	sort.Slice(order, func(i, j int) bool {
		a, _ := time.Parse(dayFormat, order[i])
		b, _ := time.Parse(dayFormat, order[j])
		return a.After(b)
	})

	result := make([]DayGroup, 0, len(order))
	for _, day := range order {
		result = append(result, *grouped[day])
	}
	return result
}
