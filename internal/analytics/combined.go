package analytics

import (
	"encoding/json"

	"perf-analytics/internal/model"
)

// UserBreakdown 合併檢視的一列：單一使用者各準則的計數。
type UserBreakdown struct {
	Name   string
	Counts map[string]int
}

func (b UserBreakdown) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(b.Counts)+1)
	for name, count := range b.Counts {
		row[name] = count
	}
	row["name"] = b.Name
	return json.Marshal(row)
}

// CombinedBreakdown 為每位非管理員使用者建立一列，已知準則全部補零，
// 再累計每筆紀錄到 row[user][criterion]。未知使用者的紀錄略過；
// 未知準則仍累計在臨時鍵上，與個人檢視的寬鬆行為一致。
func CombinedBreakdown(logs []model.LogEntry, users []model.User, criteria []string) []UserBreakdown {
	result := []UserBreakdown{}
	index := map[string]int{}
	for _, u := range users {
		if u.IsAdmin() {
			continue
		}
		if _, ok := index[u.Name]; ok {
			continue
		}
		row := UserBreakdown{Name: u.Name, Counts: make(map[string]int, len(criteria))}
		for _, c := range criteria {
			row.Counts[c] = 0
		}
		index[u.Name] = len(result)
		result = append(result, row)
	}

	for _, entry := range logs {
		if i, ok := index[entry.User]; ok {
			result[i].Counts[entry.Criterion]++
		}
	}
	return result
}
