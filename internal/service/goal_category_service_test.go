package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func newCategoryService(t *testing.T, db *gorm.DB) (*GoalCategoryService, context.Context) {
	t.Helper()
	svc := NewGoalCategoryService(repository.NewGoalCategoryRepository(db), repository.NewGoalRepository(db))
	return svc, context.Background()
}

func TestGoalCategorySeedDefaults(t *testing.T) {
	svc, ctx := newCategoryService(t, newTestDB(t))

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 8)
	for _, category := range categories {
		assert.True(t, category.IsDefault)
	}
}

func TestGoalCategoryCreateRejectsDuplicate(t *testing.T) {
	svc, ctx := newCategoryService(t, newTestDB(t))

	created, err := svc.Create(ctx, GoalCategoryInput{Name: "Side Projects"})
	require.NoError(t, err)
	assert.Equal(t, "Target", created.Icon)
	assert.Equal(t, "#3B82F6", created.Color)
	assert.False(t, created.IsDefault)

	_, err = svc.Create(ctx, GoalCategoryInput{Name: "Side Projects"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Create(ctx, GoalCategoryInput{Name: "Health & Fitness"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Create(ctx, GoalCategoryInput{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGoalCategoryUpdateRenameConflict(t *testing.T) {
	svc, ctx := newCategoryService(t, newTestDB(t))

	created, err := svc.Create(ctx, GoalCategoryInput{Name: "Side Projects"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, GoalCategoryUpdate{Name: strPtr("Health & Fitness")})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	updated, err := svc.Update(ctx, created.ID, GoalCategoryUpdate{
		Name:  strPtr("Open Source"),
		Color: strPtr("#000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Open Source", updated.Name)
	assert.Equal(t, "#000000", updated.Color)
}

func TestGoalCategoryDeleteGuards(t *testing.T) {
	db := newTestDB(t)
	svc, ctx := newCategoryService(t, db)

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	// Defaults are protected.
	err = svc.Delete(ctx, categories[0].ID)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// A custom category in use by a goal is protected too.
	created, err := svc.Create(ctx, GoalCategoryInput{Name: "Side Projects"})
	require.NoError(t, err)
	goalRepo := repository.NewGoalRepository(db)
	require.NoError(t, goalRepo.Create(ctx, &model.Goal{Title: "Ship it", Category: "Side Projects", Status: model.GoalStatusActive}))
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Unused custom categories delete cleanly.
	unused, err := svc.Create(ctx, GoalCategoryInput{Name: "Gardening"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, unused.ID))
	_, err = svc.Get(ctx, unused.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
