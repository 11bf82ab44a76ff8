package analytics

import (
	"testing"
	"time"

	"perf-analytics/internal/model"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilterByRangeInclusive(t *testing.T) {
	logs := []model.LogEntry{
		{ID: 1, Date: "2024-01-01T00:00:00.000Z"},
		{ID: 2, Date: "2024-01-02T12:00:00.000Z"},
		{ID: 3, Date: "2024-01-03T23:59:59.000Z"},
		{ID: 4, Date: "2024-01-04T00:00:00.000Z"},
	}
	start := at("2024-01-01T00:00:00Z")
	end := at("2024-01-03T23:59:59Z")

	got := FilterByRange(logs, start, end)
	require.Len(t, got, 3)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(3), got[2].ID)
}

func TestFilterByRangeSubDayPrecision(t *testing.T) {
	// 範圍結尾是午夜時，同一天較晚的紀錄不在範圍內
	logs := []model.LogEntry{
		{ID: 1, Date: "2024-01-03T10:00:00.000Z"},
	}
	start := at("2024-01-01T00:00:00Z")
	end := at("2024-01-03T00:00:00Z")

	require.Empty(t, FilterByRange(logs, start, end))
	require.Len(t, FilterByRange(logs, start, EndOfDay(end)), 1)
}

func TestFilterByRangeMalformedDate(t *testing.T) {
	logs := []model.LogEntry{
		{ID: 1, Date: "not-a-date"},
		{ID: 2, Date: ""},
		{ID: 3, Date: "2024-01-02"},
	}
	got := FilterByRange(logs, day("2024-01-01"), day("2024-01-05"))
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ID)
}

func TestFilterByRangeInvertedRange(t *testing.T) {
	logs := []model.LogEntry{{ID: 1, Date: "2024-01-02T00:00:00.000Z"}}
	require.Empty(t, FilterByRange(logs, day("2024-01-05"), day("2024-01-01")))
}
