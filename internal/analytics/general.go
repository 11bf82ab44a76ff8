package analytics

import "perf-analytics/internal/model"

// UserCount 總覽檢視的一列：單一使用者在期間內的紀錄總數。
type UserCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GeneralTotals 依名冊順序為每位非管理員使用者建立計數，
// 再累計每筆紀錄。紀錄指向未知或管理員名稱時直接略過。
func GeneralTotals(logs []model.LogEntry, users []model.User) []UserCount {
	result := []UserCount{}
	index := map[string]int{}
	for _, u := range users {
		if u.IsAdmin() {
			continue
		}
		if _, ok := index[u.Name]; ok {
			continue
		}
		index[u.Name] = len(result)
		result = append(result, UserCount{Name: u.Name})
	}

	for _, entry := range logs {
		if i, ok := index[entry.User]; ok {
			result[i].Count++
		}
	}
	return result
}
