package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func TestExpandSleepHours(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  []int
	}{
		{"overnight", 22, 6, []int{22, 23, 0, 1, 2, 3, 4, 5}},
		{"same day", 6, 22, []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}},
		{"one hour nap", 14, 15, []int{14}},
		{"wrap just past midnight", 23, 1, []int{23, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandSleepHours(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Equal hours take the wraparound branch: the interval covers the full
// 24-hour cycle, not an empty one.
func TestExpandSleepHoursEqual(t *testing.T) {
	got, err := ExpandSleepHours(8, 8)
	require.NoError(t, err)
	require.Len(t, got, 24)
	assert.Equal(t, 8, got[0])
	assert.Equal(t, 7, got[23])
}

func TestExpandSleepHoursInvalid(t *testing.T) {
	for _, pair := range [][2]int{{-1, 6}, {24, 6}, {6, -1}, {6, 24}} {
		_, err := ExpandSleepHours(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestSetScheduleDeactivatesOthers(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(repository.NewSleepScheduleRepository(db), repository.NewNoteRepository(db))
	ctx := context.Background()

	first, err := svc.SetSchedule(ctx, SleepInput{StartHour: 23, EndHour: 7})
	require.NoError(t, err)
	second, err := svc.SetSchedule(ctx, SleepInput{StartHour: 22, EndHour: 6})
	require.NoError(t, err)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	var count int64
	require.NoError(t, db.Model(&model.SleepSchedule{}).Where("is_active = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.NotEqual(t, first.ID, active.ID)
}

func TestApplyToDateIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(repository.NewSleepScheduleRepository(db), repository.NewNoteRepository(db))
	ctx := context.Background()

	quality := 4
	_, err := svc.SetSchedule(ctx, SleepInput{StartHour: 23, EndHour: 7, DefaultQuality: &quality})
	require.NoError(t, err)

	hours, err := svc.ApplyToDate(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, []int{23, 0, 1, 2, 3, 4, 5, 6}, hours)

	// Re-applying replaces rather than duplicates.
	again, err := svc.ApplyToDate(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, hours, again)

	var notes []model.Note
	require.NoError(t, db.Where("date = ? AND is_sleep = ?", "2025-03-10", true).Find(&notes).Error)
	require.Len(t, notes, 8)

	got := make([]int, 0, len(notes))
	for _, note := range notes {
		require.NotNil(t, note.SleepQuality)
		assert.Equal(t, 4, *note.SleepQuality)
		got = append(got, note.Hour)
	}
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 23}, got)
}

func TestApplyToDateNoActiveSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(repository.NewSleepScheduleRepository(db), repository.NewNoteRepository(db))

	_, err := svc.ApplyToDate(context.Background(), "2025-03-10")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyToDateBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSleepService(repository.NewSleepScheduleRepository(db), repository.NewNoteRepository(db))

	_, err := svc.ApplyToDate(context.Background(), "10-03-2025")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
