package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func newNoteService(t *testing.T, db *gorm.DB) (*NoteService, context.Context) {
	t.Helper()
	svc := NewNoteService(repository.NewNoteRepository(db), repository.NewTagRepository(db))
	return svc, context.Background()
}

func TestCreateNoteValidation(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	_, err := svc.CreateNote(ctx, NoteInput{Date: "03-10-2025", Hour: 9})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.CreateNote(ctx, NoteInput{Date: "2025-03-10", Hour: 24})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.CreateNote(ctx, NoteInput{Date: "2025-03-10", Hour: 9, SleepQuality: intPtr(6)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreateNoteAttachesSeededTags(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	// "Productive" and "Focused" exist in the seed data; "nonsense" does
	// not and is skipped silently.
	note, err := svc.CreateNote(ctx, NoteInput{
		Date:     "2025-03-10",
		Hour:     9,
		Content:  "standup then focus block",
		TagNames: []string{"Productive", "Focused", "nonsense"},
	})
	require.NoError(t, err)

	slots, err := svc.DayView(ctx, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 24)

	slot := slots[9]
	require.NotNil(t, slot.ID)
	assert.Equal(t, note.ID, *slot.ID)
	assert.ElementsMatch(t, []string{"Productive", "Focused"}, slot.Tags)
}

func TestDayViewAlwaysHas24Slots(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	slots, err := svc.DayView(ctx, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 24)
	for hour, slot := range slots {
		assert.Equal(t, hour, slot.Time)
		assert.Nil(t, slot.ID)
		assert.Empty(t, slot.Note)
		assert.NotNil(t, slot.Tags)
	}
}

func TestDayViewLastWriteWins(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	first, err := svc.CreateNote(ctx, NoteInput{Date: "2025-03-10", Hour: 14, Content: "old entry"})
	require.NoError(t, err)
	second, err := svc.CreateNote(ctx, NoteInput{Date: "2025-03-10", Hour: 14, Content: "new entry"})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	slots, err := svc.DayView(ctx, "2025-03-10")
	require.NoError(t, err)
	slot := slots[14]
	require.NotNil(t, slot.ID)
	assert.Equal(t, second.ID, *slot.ID)
	assert.Equal(t, "new entry", slot.Note)
}

func TestUpdateNoteReplacesTags(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	note, err := svc.CreateNote(ctx, NoteInput{
		Date:     "2025-03-10",
		Hour:     8,
		Content:  "gym",
		TagNames: []string{"Tired"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateNote(ctx, note.ID, NoteInput{
		Date:     "2025-03-10",
		Hour:     8,
		Content:  "client call instead",
		TagNames: []string{"Stressed"},
	})
	require.NoError(t, err)

	slots, err := svc.DayView(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "client call instead", slots[8].Note)
	assert.Equal(t, []string{"Stressed"}, slots[8].Tags)
}

func TestUpdateNoteNotFound(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	_, err := svc.UpdateNote(ctx, 9999, NoteInput{Date: "2025-03-10", Hour: 8})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNotesFilters(t *testing.T) {
	svc, ctx := newNoteService(t, newTestDB(t))

	_, err := svc.CreateNote(ctx, NoteInput{Date: "2025-03-10", Hour: 9, Content: "quarterly planning"})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, NoteInput{Date: "2025-03-11", Hour: 9, Content: "grocery run"})
	require.NoError(t, err)

	byDate, err := svc.ListNotes(ctx, repository.NoteFilter{Date: "2025-03-10"})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "quarterly planning", byDate[0].Content)

	bySearch, err := svc.ListNotes(ctx, repository.NoteFilter{Search: "grocery"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "2025-03-11", bySearch[0].Date)
}
