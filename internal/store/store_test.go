package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"perf-analytics/internal/kv"
	"perf-analytics/internal/model"
	"perf-analytics/internal/worker"

	"github.com/stretchr/testify/require"
)

// syncPool 讓測試中的寫回同步執行
type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

// memKV 以 map 實作的測試用 KV
func memKV(seed map[string]string) (kv.KV, map[string]string) {
	data := map[string]string{}
	for k, v := range seed {
		data[k] = v
	}
	return &kv.FakeKV{
		GetFn: func(_ context.Context, key string) (string, error) {
			val, ok := data[key]
			if !ok {
				return "", kv.ErrKeyNotFound
			}
			return val, nil
		},
		SetFn: func(_ context.Context, key, value string) error {
			data[key] = value
			return nil
		},
		DeleteFn: func(_ context.Context, key string) error {
			if _, ok := data[key]; !ok {
				return kv.ErrKeyNotFound
			}
			delete(data, key)
			return nil
		},
	}, data
}

func openTestStore(t *testing.T, seed map[string]string) (*Store, map[string]string) {
	t.Helper()
	kvs, data := memKV(seed)
	s, err := Open(context.Background(), kvs, syncPool{})
	require.NoError(t, err)
	return s, data
}

func TestOpenDefaults(t *testing.T) {
	s, _ := openTestStore(t, nil)

	users := s.Users()
	require.Len(t, users, 5)
	require.Equal(t, "Администратор", users[4].Name)
	require.True(t, users[4].IsAdmin())

	criteria := s.Criteria()
	require.Len(t, criteria, 6)
	require.Equal(t, "Намерение", criteria[0])

	require.Empty(t, s.Organizations())
	require.Empty(t, s.Logs())
}

func TestOpenExistingCollections(t *testing.T) {
	seed := map[string]string{
		"pa_users":    `[{"id":1,"name":"A","role":"user"}]`,
		"pa_criteria": `["X"]`,
		"pa_logs":     `[{"id":1,"date":"2024-01-01","user":"A","criterion":"X","organization":"Acme"}]`,
	}
	s, _ := openTestStore(t, seed)

	require.Len(t, s.Users(), 1)
	require.Equal(t, []string{"X"}, s.Criteria())
	require.Len(t, s.Logs(), 1)
	require.Equal(t, "Acme", s.Logs()[0].Organization.Name())
}

func TestOpenMalformedCollections(t *testing.T) {
	// 壞損 JSON 一律以預設／空集合取代，不報錯
	seed := map[string]string{
		"pa_users":         `{broken`,
		"pa_criteria":      `42`,
		"pa_organizations": `"not an array"`,
		"pa_logs":          `{}`,
	}
	s, _ := openTestStore(t, seed)

	require.Len(t, s.Users(), 5)
	require.Len(t, s.Criteria(), 6)
	require.Empty(t, s.Organizations())
	require.Empty(t, s.Logs())
}

func TestOpenLegacyOrganizations(t *testing.T) {
	seed := map[string]string{
		"pa_organizations": `["Acme","Globex"]`,
	}
	s, data := openTestStore(t, seed)

	orgs := s.Organizations()
	require.Len(t, orgs, 2)
	require.Equal(t, "Acme", orgs[0].Name)
	require.Equal(t, "Globex", orgs[1].Name)
	require.NotZero(t, orgs[0].ID)
	require.Empty(t, orgs[0].Code)

	// 升級後的結構化格式立刻寫回
	var persisted []model.Organization
	require.NoError(t, json.Unmarshal([]byte(data["pa_organizations"]), &persisted))
	require.Len(t, persisted, 2)
}

func TestAddUserPersists(t *testing.T) {
	s, data := openTestStore(t, nil)
	u := s.AddUser("Neo", model.RoleUser)
	require.NotZero(t, u.ID)

	var persisted []model.User
	require.NoError(t, json.Unmarshal([]byte(data["pa_users"]), &persisted))
	require.Len(t, persisted, 6)
	require.Equal(t, "Neo", persisted[5].Name)
}

func TestRemoveUserKeepsLogs(t *testing.T) {
	seed := map[string]string{
		"pa_users": `[{"id":1,"name":"A","role":"user"}]`,
		"pa_logs":  `[{"id":1,"date":"2024-01-01","user":"A","criterion":"X","organization":"Acme"}]`,
	}
	s, _ := openTestStore(t, seed)
	s.RemoveUser(1)

	require.Empty(t, s.Users())
	// 歷史紀錄保留懸空的名稱
	require.Len(t, s.Logs(), 1)
	require.Equal(t, "A", s.Logs()[0].User)
}

func TestAddCriterionDuplicateNoop(t *testing.T) {
	s, _ := openTestStore(t, map[string]string{"pa_criteria": `["X"]`})
	s.AddCriterion("X")
	require.Equal(t, []string{"X"}, s.Criteria())

	s.AddCriterion("Y")
	require.Equal(t, []string{"X", "Y"}, s.Criteria())
}

func TestRemoveCriterionNoCascade(t *testing.T) {
	seed := map[string]string{
		"pa_criteria": `["X"]`,
		"pa_logs":     `[{"id":1,"date":"2024-01-01","user":"A","criterion":"X","organization":"Acme"}]`,
	}
	s, _ := openTestStore(t, seed)
	s.RemoveCriterion("X")

	require.Empty(t, s.Criteria())
	require.Equal(t, "X", s.Logs()[0].Criterion)
}

func TestAddOrganizationDuplicates(t *testing.T) {
	s, _ := openTestStore(t, nil)

	_, ok := s.AddOrganization(model.Organization{Name: "Acme", Code: "001"})
	require.True(t, ok)

	// 名稱不分大小寫重複
	_, ok = s.AddOrganization(model.Organization{Name: "ACME", Code: "002"})
	require.False(t, ok)

	// 代碼重複
	_, ok = s.AddOrganization(model.Organization{Name: "Globex", Code: "001"})
	require.False(t, ok)

	require.Len(t, s.Organizations(), 1)
}

func TestAddLogFields(t *testing.T) {
	s, data := openTestStore(t, nil)
	backdated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	entry := s.AddLog("A", "X", "note", "Acme", backdated)

	require.Equal(t, "2024-01-15T00:00:00.000Z", entry.Date)
	require.NotEqual(t, entry.Date, entry.CreatedAt)
	require.Equal(t, "A", entry.User)
	require.Equal(t, "Acme", entry.Organization.Name())

	var persisted []model.LogEntry
	require.NoError(t, json.Unmarshal([]byte(data["pa_logs"]), &persisted))
	require.Len(t, persisted, 1)
}

func TestAddLogDefaultsToNow(t *testing.T) {
	s, _ := openTestStore(t, nil)
	entry := s.AddLog("A", "X", "", "Acme", time.Time{})

	ts, ok := model.ParseTimestamp(entry.Date)
	require.True(t, ok)
	require.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestCurrentUserLifecycle(t *testing.T) {
	s, data := openTestStore(t, nil)
	ctx := context.Background()

	_, ok := s.CurrentUser(ctx)
	require.False(t, ok)

	require.NoError(t, s.SetCurrentUser(ctx, model.User{ID: 1, Name: "A", Role: model.RoleUser}))
	require.Contains(t, data, "pa_currentUser")

	u, ok := s.CurrentUser(ctx)
	require.True(t, ok)
	require.Equal(t, "A", u.Name)

	require.NoError(t, s.ClearCurrentUser(ctx))
	_, ok = s.CurrentUser(ctx)
	require.False(t, ok)

	// 重複清除不報錯
	require.NoError(t, s.ClearCurrentUser(ctx))
}
