package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func newAnalysisService(t *testing.T, db *gorm.DB, gen *fakeGenerator) (*AnalysisService, context.Context) {
	t.Helper()
	svc := NewAnalysisService(repository.NewAnalysisRepository(db), gen, "phi3:mini")
	return svc, context.Background()
}

func TestAnalyzeUpsertsPerDate(t *testing.T) {
	db := newTestDB(t)
	gen := &fakeGenerator{response: "first reflection"}
	svc, ctx := newAnalysisService(t, db, gen)

	input := AnalyzeInput{
		Date:  "2025-03-10",
		Notes: []HourNote{{Time: 9, Note: "wrote the report"}, {Time: 14, Note: "long walk"}},
		Goals: "finish the report",
	}

	result, err := svc.Analyze(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "first reflection", result.Analysis)
	assert.Equal(t, "2025-03-10", result.Date)

	// Re-analyzing the same date replaces the record instead of appending.
	gen.response = "second reflection"
	_, err = svc.Analyze(ctx, input)
	require.NoError(t, err)

	repo := repository.NewAnalysisRepository(db)
	stored, err := repo.FindByDate(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "second reflection", stored.AIResponse)
	assert.Equal(t, "phi3:mini", stored.ModelUsed)

	history, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAnalyzePromptIncludesNotesAndGoals(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	svc, ctx := newAnalysisService(t, newTestDB(t), gen)

	_, err := svc.Analyze(ctx, AnalyzeInput{
		Date:  "2025-03-10",
		Notes: []HourNote{{Time: 9, Note: "deep work"}, {Time: 10, Note: "   "}},
		Goals: "ship the feature",
	})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "- 9:00: deep work")
	assert.NotContains(t, prompt, "10:00")
	assert.Contains(t, prompt, "ship the feature")
}

func TestAnalyzeSurfacesBackendFailure(t *testing.T) {
	svc, ctx := newAnalysisService(t, newTestDB(t), &fakeGenerator{err: errBackendDown})

	_, err := svc.Analyze(ctx, AnalyzeInput{Date: "2025-03-10"})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAnalyzeRejectsBadDate(t *testing.T) {
	svc, ctx := newAnalysisService(t, newTestDB(t), &fakeGenerator{response: "ok"})

	_, err := svc.Analyze(ctx, AnalyzeInput{Date: "10/03/2025"})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHistoryLimits(t *testing.T) {
	db := newTestDB(t)
	gen := &fakeGenerator{response: "reflection"}
	svc, ctx := newAnalysisService(t, db, gen)

	for i := 1; i <= 12; i++ {
		_, err := svc.Analyze(ctx, AnalyzeInput{Date: fmt.Sprintf("2025-03-%02d", i)})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 10)

	history, err = svc.History(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	history, err = svc.History(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, history, 12)
}

func TestGenerateSMARTField(t *testing.T) {
	gen := &fakeGenerator{response: "Description:\nBuild a daily writing habit that compounds over a year."}
	svc, ctx := newAnalysisService(t, newTestDB(t), gen)

	result, err := svc.GenerateSMARTField(ctx, SMARTFieldInput{
		GoalTitle: "Write every day",
		FieldType: "description",
		Category:  "Creative",
	})
	require.NoError(t, err)
	assert.False(t, result.FallbackUsed)
	// The bare label line is skipped; the substantial line survives.
	assert.Equal(t, "Build a daily writing habit that compounds over a year.", result.Content)
	assert.Equal(t, "Write every day", result.GoalTitle)
}

func TestGenerateSMARTFieldFallback(t *testing.T) {
	svc, ctx := newAnalysisService(t, newTestDB(t), &fakeGenerator{err: errBackendDown})

	result, err := svc.GenerateSMARTField(ctx, SMARTFieldInput{
		GoalTitle: "Learn Spanish",
		FieldType: "relevant",
		Category:  "Learning",
	})
	require.NoError(t, err)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.Content, "learning")
}

func TestGenerateSMARTFieldUnknownType(t *testing.T) {
	svc, ctx := newAnalysisService(t, newTestDB(t), &fakeGenerator{response: "ok"})

	_, err := svc.GenerateSMARTField(ctx, SMARTFieldInput{GoalTitle: "x", FieldType: "aspirational"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerateSMARTFieldUsesExistingContext(t *testing.T) {
	gen := &fakeGenerator{response: "Track three sessions per week with a spreadsheet."}
	svc, ctx := newAnalysisService(t, newTestDB(t), gen)

	_, err := svc.GenerateSMARTField(ctx, SMARTFieldInput{
		GoalTitle: "Get fit",
		FieldType: "measurable",
		Existing:  map[string]string{"specific": "run 5k without stopping"},
	})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "run 5k without stopping")
}
