package analytics

import (
	"encoding/json"
	"time"

	"perf-analytics/internal/model"
)

// DayBucket 個人檢視的一列：單一日曆日的總數與各準則計數。
// 準則集合是執行期設定，因此以 map 表示；序列化成圖表列時
// 與固定欄位攤平在同一個 JSON 物件。
type DayBucket struct {
	Date   string
	Total  int
	Counts map[string]int
}

func (b DayBucket) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(b.Counts)+2)
	for name, count := range b.Counts {
		row[name] = count
	}
	row["date"] = b.Date
	row["total"] = b.Total
	return json.Marshal(row)
}

func newDayBucket(date string, criteria []string) DayBucket {
	b := DayBucket{Date: date, Counts: make(map[string]int, len(criteria))}
	for _, c := range criteria {
		b.Counts[c] = 0
	}
	return b
}

// PersonalSeries 彙整單一使用者在 [start, end] 內每一天的紀錄數。
// 傳入的 logs 應已先經過 FilterByRange。回傳序列涵蓋範圍內的每個日曆日
// （首日取 00:00、末日取 23:59:59.999 作為迭代邊界），沒有紀錄的日子
// 補零，依日期遞增排序。已移除準則留下的名稱仍會累計在各自的鍵上。
// user 為空時回傳空序列。
func PersonalSeries(logs []model.LogEntry, user string, criteria []string, start, end time.Time) []DayBucket {
	result := []DayBucket{}
	if user == "" {
		return result
	}

	grouped := map[string]DayBucket{}
	for _, entry := range logs {
		if entry.User != user {
			continue
		}
		t, ok := model.ParseTimestamp(entry.Date)
		if !ok {
			continue
		}
		day := t.Format(dayFormat)
		bucket, ok := grouped[day]
		if !ok {
			bucket = newDayBucket(day, criteria)
		}
		bucket.Counts[entry.Criterion]++
		bucket.Total++
		grouped[day] = bucket
	}

	// 列出範圍內的每一天，缺漏的補上全零列。
	// 此處的日界對齊刻意比 FilterByRange 的時間戳精度寬鬆，兩者不可合併。
	curr := StartOfDay(start)
	last := EndOfDay(end)
	for !curr.After(last) {
		day := curr.Format(dayFormat)
		if bucket, ok := grouped[day]; ok {
			result = append(result, bucket)
		} else {
			result = append(result, newDayBucket(day, criteria))
		}
		curr = curr.AddDate(0, 0, 1)
	}
	return result
}
