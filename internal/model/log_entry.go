// File: internal/model/log_entry.go
package model

import (
	"encoding/json"
	"time"
)

// Timestamp 格式，對應 ISO-8601（毫秒、UTC）
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// LogEntry 一筆績效紀錄。建立後不可變更，只能追加。
// date 為事件日期（使用者可回填過去日期），createdAt 為實際輸入時間；
// 所有篩選與分組都以 date 為準，createdAt 只用於清單檢視的時間顯示。
type LogEntry struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	CreatedAt    string `json:"createdAt,omitempty"`
	User         string `json:"user"`
	Criterion    string `json:"criterion"`
	Comment      string `json:"comment,omitempty"`
	Organization OrgRef `json:"organization"`
}

// OrgRef 紀錄中的組織參照。舊資料存的是組織名稱字串，
// 較新的資料可能存結構化物件，反序列化時一律還原成名稱。
type OrgRef string

func (o *OrgRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*o = OrgRef(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*o = OrgRef(obj.Name)
	return nil
}

// Name 回傳組織顯示名稱
func (o OrgRef) Name() string {
	return string(o)
}

// FormatTimestamp 將時間轉為 ISO-8601 字串（UTC）
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp 解析紀錄上的時間欄位。接受完整 ISO-8601 時間戳或純日期，
// 無法解析時回傳 ok=false，呼叫端視為「不符合任何範圍」。
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
