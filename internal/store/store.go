// Package store 管理四個集合（使用者、準則、組織、紀錄）與目前登入者，
// 全部以 JSON 序列化存在注入的 kv.KV 固定鍵之下。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"perf-analytics/internal/kv"
	"perf-analytics/internal/model"
	"perf-analytics/internal/worker"
)

const (
	usersKey         = "pa_users"
	criteriaKey      = "pa_criteria"
	organizationsKey = "pa_organizations"
	logsKey          = "pa_logs"
	currentUserKey   = "pa_currentUser"
)

// Store 啟動時載入全部集合，之後的變更在記憶體內同步完成，
// 並將受影響集合的完整內容排入 pool 寫回。pool 只配一個 worker，
// 寫回因此依變更順序序列化。
type Store struct {
	mu   sync.Mutex
	kv   kv.KV
	pool worker.Pool

	users         []model.User
	criteria      []string
	organizations []model.Organization
	logs          []model.LogEntry
}

// Open 載入全部集合並回傳 Store。鍵不存在時使用內建預設名冊與準則；
// 已存壞損 JSON 一律以預設／空集合取代，不往上拋錯。
func Open(ctx context.Context, store kv.KV, pool worker.Pool) (*Store, error) {
	s := &Store{kv: store, pool: pool}

	if !s.loadJSON(ctx, usersKey, &s.users) {
		s.users = defaultUsers()
	}
	if !s.loadJSON(ctx, criteriaKey, &s.criteria) {
		s.criteria = defaultCriteria()
	}
	s.organizations = s.loadOrganizations(ctx)
	if !s.loadJSON(ctx, logsKey, &s.logs) {
		s.logs = []model.LogEntry{}
	}
	return s, nil
}

// loadJSON 載入並反序列化一個鍵。鍵不存在或內容壞損時回傳 false，
// 呼叫端改用預設值。
func (s *Store) loadJSON(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			log.Printf("load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("load %s: malformed data discarded: %v", key, err)
		return false
	}
	return true
}

// loadOrganizations 處理組織集合的舊格式：若存的是名稱字串陣列，
// 透明升級成結構化紀錄（合成 id、其餘欄位留空）。
func (s *Store) loadOrganizations(ctx context.Context) []model.Organization {
	raw, err := s.kv.Get(ctx, organizationsKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			log.Printf("load %s: %v", organizationsKey, err)
		}
		return []model.Organization{}
	}

	var orgs []model.Organization
	if err := json.Unmarshal([]byte(raw), &orgs); err == nil {
		if orgs == nil {
			orgs = []model.Organization{}
		}
		return orgs
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		orgs = make([]model.Organization, 0, len(names))
		base := time.Now().UnixMilli()
		for i, name := range names {
			orgs = append(orgs, model.Organization{ID: base + int64(i), Name: name})
		}
		s.persistLocked(organizationsKey, orgs)
		return orgs
	}

	log.Printf("load %s: malformed data discarded", organizationsKey)
	return []model.Organization{}
}

// persistLocked 立刻序列化集合內容並排程寫回，呼叫端需持有 s.mu
// （Open 期間例外，尚無並行存取）。
func (s *Store) persistLocked(key string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		log.Printf("persist %s: %v", key, err)
		return
	}
	s.pool.Submit(func() {
		if err := s.kv.Set(context.Background(), key, string(data)); err != nil {
			log.Printf("persist %s: %v", key, err)
		}
	})
}

// Users 回傳名冊副本
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID 依 ID 查詢使用者
func (s *Store) UserByID(id int64) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// AddUser 建立使用者，id 取建立時刻的毫秒時間戳
func (s *Store) AddUser(name string, role model.Role) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := model.User{ID: time.Now().UnixMilli(), Name: name, Role: role}
	s.users = append(s.users, u)
	s.persistLocked(usersKey, s.users)
	return u
}

// RemoveUser 依 ID 移除使用者。歷史紀錄仍保留該名稱。
func (s *Store) RemoveUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.persistLocked(usersKey, s.users)
}

// Criteria 回傳準則副本（維持插入順序）
func (s *Store) Criteria() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.criteria))
	copy(out, s.criteria)
	return out
}

// AddCriterion 新增準則，重複名稱時不做任何事
func (s *Store) AddCriterion(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.criteria {
		if c == name {
			return
		}
	}
	s.criteria = append(s.criteria, name)
	s.persistLocked(criteriaKey, s.criteria)
}

// RemoveCriterion 移除準則。引用它的紀錄不連動刪除，名稱懸空。
func (s *Store) RemoveCriterion(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.criteria[:0]
	for _, c := range s.criteria {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.criteria = kept
	s.persistLocked(criteriaKey, s.criteria)
}

// Organizations 回傳組織副本
func (s *Store) Organizations() []model.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Organization, len(s.organizations))
	copy(out, s.organizations)
	return out
}

// AddOrganization 建立組織。code 重複或名稱（不分大小寫）重複時
// 回傳 false 且集合不變；成功時回傳建立的紀錄。
func (s *Store) AddOrganization(org model.Organization) (model.Organization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.organizations {
		if existing.Code == org.Code || strings.EqualFold(existing.Name, org.Name) {
			return model.Organization{}, false
		}
	}
	org.ID = time.Now().UnixMilli()
	s.organizations = append(s.organizations, org)
	s.persistLocked(organizationsKey, s.organizations)
	return org, true
}

// RemoveOrganization 依 ID 移除組織
func (s *Store) RemoveOrganization(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.organizations[:0]
	for _, o := range s.organizations {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.organizations = kept
	s.persistLocked(organizationsKey, s.organizations)
}

// Logs 回傳紀錄副本
func (s *Store) Logs() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.LogEntry, len(s.logs))
	copy(out, s.logs)
	return out
}

// AddLog 追加一筆績效紀錄。date 為事件日期，零值時取現在；
// createdAt 一律取現在，紀錄建立後不再變更。
func (s *Store) AddLog(user, criterion, comment, organization string, date time.Time) model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if date.IsZero() {
		date = now
	}
	entry := model.LogEntry{
		ID:           now.UnixMilli(),
		Date:         model.FormatTimestamp(date),
		CreatedAt:    model.FormatTimestamp(now),
		User:         user,
		Criterion:    criterion,
		Comment:      comment,
		Organization: model.OrgRef(organization),
	}
	s.logs = append(s.logs, entry)
	s.persistLocked(logsKey, s.logs)
	return entry
}

// SetCurrentUser 同步保存目前登入者
func (s *Store) SetCurrentUser(ctx context.Context, u model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, currentUserKey, string(data))
}

// CurrentUser 讀取目前登入者，未登入時 ok=false
func (s *Store) CurrentUser(ctx context.Context) (model.User, bool) {
	raw, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.User{}, false
	}
	return u, true
}

// ClearCurrentUser 清除目前登入者
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, currentUserKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return err
	}
	return nil
}
