package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// newTestDB opens an isolated in-memory database with migrations and seed
// data applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fakeGenerator is a canned ai.Generator for tests.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

var errBackendDown = errors.New("connection refused")

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func seedNote(t *testing.T, db *gorm.DB, date string, hour int, content string) model.Note {
	t.Helper()
	note := model.Note{Date: date, Hour: hour, Content: content}
	require.NoError(t, db.Create(&note).Error)
	return note
}
