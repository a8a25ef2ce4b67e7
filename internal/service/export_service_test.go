package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func TestExportNotes(t *testing.T) {
	db := newTestDB(t)
	seedNote(t, db, "2025-03-01", 9, "first entry")
	seedNote(t, db, "2025-03-02", 10, "second entry")
	seedNote(t, db, "2025-04-01", 9, "outside the range")

	svc := NewExportService(repository.NewNoteRepository(db), repository.NewGoalRepository(db))
	ctx := context.Background()

	notes, err := svc.Notes(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "2025-03-01", notes[0].Date)
	assert.Equal(t, "first entry", notes[0].Content)
	assert.NotNil(t, notes[0].Tags)
	assert.NotEmpty(t, notes[0].CreatedAt)
}

func TestExportNotesCSV(t *testing.T) {
	db := newTestDB(t)
	seedNote(t, db, "2025-03-01", 9, `has "quotes", and commas`)

	svc := NewExportService(repository.NewNoteRepository(db), repository.NewGoalRepository(db))
	out, err := svc.NotesCSV(context.Background(), "2025-03-01", "2025-03-01")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "date", "hour", "content", "tags", "created_at", "updated_at"}, records[0])
	assert.Equal(t, `has "quotes", and commas`, records[1][3])
}

func TestExportGoalsCSV(t *testing.T) {
	db := newTestDB(t)
	goalRepo := repository.NewGoalRepository(db)
	ctx := context.Background()
	require.NoError(t, goalRepo.Create(ctx, &model.Goal{
		Title:    "Read more",
		Category: "Personal",
		Progress: 33.3,
		Status:   model.GoalStatusActive,
	}))

	svc := NewExportService(repository.NewNoteRepository(db), goalRepo)
	out, err := svc.GoalsCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Read more", records[1][1])
	assert.Equal(t, "33.3", records[1][4])
	assert.Equal(t, "", records[1][6]) // no target date
}

func TestExportEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewExportService(repository.NewNoteRepository(db), repository.NewGoalRepository(db))
	ctx := context.Background()

	notes, err := svc.Notes(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Empty(t, notes)

	out, err := svc.NotesCSV(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, "id,date,hour,content,tags,created_at,updated_at\n", out)
}
