package model_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"staysync/internal/domains/inventory/model"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  []model.DateRange
	}{
		{
			name:  "empty",
			dates: nil,
			want:  []model.DateRange{},
		},
		{
			name:  "unordered with duplicates",
			dates: []time.Time{day("2024-01-03"), day("2024-01-01"), day("2024-01-02"), day("2024-01-02")},
			want:  []model.DateRange{{From: day("2024-01-01"), To: day("2024-01-03")}},
		},
		{
			name:  "gap splits ranges",
			dates: []time.Time{day("2024-01-01"), day("2024-01-02"), day("2024-01-05"), day("2024-01-31"), day("2024-02-01")},
			want: []model.DateRange{
				{From: day("2024-01-01"), To: day("2024-01-02")},
				{From: day("2024-01-05"), To: day("2024-01-05")},
				{From: day("2024-01-31"), To: day("2024-02-01")},
			},
		},
		{
			name:  "time of day ignored",
			dates: []time.Time{time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), day("2024-01-01")},
			want:  []model.DateRange{{From: day("2024-01-01"), To: day("2024-01-01")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Coalesce(tt.dates))
		})
	}
}

func TestRatePlanStale(t *testing.T) {
	plan := model.RatePlan{Currency: "USD"}

	assert.False(t, plan.Stale("USD"))
	assert.True(t, plan.Stale("EUR"))
}

func TestRoomMappingCategoryLevel(t *testing.T) {
	assert.True(t, model.RoomMapping{Category: "deluxe"}.CategoryLevel())
	assert.False(t, model.RoomMapping{RoomID: sql.NullString{String: "room-1", Valid: true}}.CategoryLevel())
}

func TestSyncResultFail(t *testing.T) {
	result := model.SyncResult{Synced: 1}
	result.Fail("room 101", errors.New("boom"))

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"room 101: boom"}, result.Errors)
}
