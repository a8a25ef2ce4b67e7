package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

func newAnalyticsService(t *testing.T, db *gorm.DB, gen *fakeGenerator) (*AnalyticsService, context.Context) {
	t.Helper()
	svc := NewAnalyticsService(
		repository.NewNoteRepository(db),
		repository.NewGoalRepository(db),
		gen,
	)
	return svc, context.Background()
}

func TestAnalyzeRejectsUnknownType(t *testing.T) {
	svc, ctx := newAnalyticsService(t, newTestDB(t), &fakeGenerator{})

	_, err := svc.Analyze(ctx, "2025-03-01", "2025-03-07", "vibes")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAnalyzeRejectsBadRange(t *testing.T) {
	svc, ctx := newAnalyticsService(t, newTestDB(t), &fakeGenerator{})

	_, err := svc.Analyze(ctx, "not-a-date", "2025-03-07", AnalyticsTrends)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Analyze(ctx, "2025-03-07", "2025-03-01", AnalyticsTrends)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAnalyzeEmptyRange(t *testing.T) {
	svc, ctx := newAnalyticsService(t, newTestDB(t), &fakeGenerator{})

	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-07", AnalyticsTrends)
	require.NoError(t, err)
	assert.Equal(t, "0 records analyzed between 2025-03-01 and 2025-03-07", result.Summary)
	assert.Empty(t, result.Trends)
	assert.Empty(t, result.Patterns)
	assert.Empty(t, result.Insights)
}

func TestAnalyzeTrends(t *testing.T) {
	db := newTestDB(t)
	// Two entries on the 1st, none on the 2nd, five on the 3rd; an
	// empty-content entry must not count.
	seedNote(t, db, "2025-03-01", 8, "morning pages")
	seedNote(t, db, "2025-03-01", 20, "evening recap")
	seedNote(t, db, "2025-03-02", 9, "   ")
	for hour := 8; hour < 13; hour++ {
		seedNote(t, db, "2025-03-03", hour, fmt.Sprintf("entry %d", hour))
	}

	svc, ctx := newAnalyticsService(t, db, &fakeGenerator{})
	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-03", AnalyticsTrends)
	require.NoError(t, err)

	// Only the two active days emit points; the mean still divides by 3.
	require.Len(t, result.Trends, 2)
	assert.Equal(t, TrendData{Date: "2025-03-01", Value: 2, Category: "activity_level"}, result.Trends[0])
	assert.Equal(t, TrendData{Date: "2025-03-03", Value: 5, Category: "activity_level"}, result.Trends[1])
	assert.Equal(t, "Average of 2.3 entries per day over 3 days", result.Summary)
	require.Len(t, result.Insights, 2)
	assert.Equal(t, "Analyzed 3 days", result.Insights[0])
	assert.Equal(t, "Peak activity: 5 entries on 2025-03-03", result.Insights[1])
}

func TestAnalyzePatternsDeterministicFallback(t *testing.T) {
	db := newTestDB(t)
	seedNote(t, db, "2025-03-01", 8, "a")
	seedNote(t, db, "2025-03-01", 8, "b")
	seedNote(t, db, "2025-03-02", 8, "c")
	seedNote(t, db, "2025-03-02", 21, "d")
	seedNote(t, db, "2025-03-03", 21, "e")
	seedNote(t, db, "2025-03-03", 13, "f")

	svc, ctx := newAnalyticsService(t, db, &fakeGenerator{err: errBackendDown})
	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-03", AnalyticsPatterns)
	require.NoError(t, err)

	require.Len(t, result.Patterns, 2)
	peak := result.Patterns[0]
	assert.Equal(t, "peak_hours", peak.PatternType)
	assert.Equal(t, "Most entries are written at 08:00, 21:00, 13:00", peak.Description)
	assert.Equal(t, 6, peak.Frequency)
	assert.InDelta(t, 0.7, peak.Confidence, 1e-9)

	consistency := result.Patterns[1]
	assert.Equal(t, "consistency", consistency.PatternType)
	assert.Equal(t, 3, consistency.Frequency)
	assert.InDelta(t, 0.9, consistency.Confidence, 1e-9)
	require.Len(t, consistency.Recommendations, 1)
	assert.Contains(t, consistency.Recommendations[0], "more days")

	assert.Equal(t, "Pattern analysis of 6 entries across 3 days", result.Summary)
}

func TestAnalyzePatternsUsesBackendNarrative(t *testing.T) {
	db := newTestDB(t)
	seedNote(t, db, "2025-03-01", 8, "slept well, wrote early")

	gen := &fakeGenerator{response: "You journal most in the morning.\n"}
	svc, ctx := newAnalyticsService(t, db, gen)
	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-01", AnalyticsPatterns)
	require.NoError(t, err)

	require.Len(t, result.Patterns, 1)
	assert.Equal(t, "ai_narrative", result.Patterns[0].PatternType)
	assert.Equal(t, "You journal most in the morning.", result.Patterns[0].Description)
	assert.InDelta(t, 0.8, result.Patterns[0].Confidence, 1e-9)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "slept well, wrote early")
}

func TestAnalyzeGoals(t *testing.T) {
	db := newTestDB(t)
	goalRepo := repository.NewGoalRepository(db)
	ctxSetup := context.Background()
	// Explicit timestamps keep the created_at DESC listing deterministic.
	mk := func(title string, progress float64, status string, created time.Time) {
		g := &model.Goal{Title: title, Category: "Personal", Progress: progress, Status: status, CreatedAt: created}
		require.NoError(t, goalRepo.Create(ctxSetup, g))
	}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mk("Ship the app", 80, model.GoalStatusActive, base.AddDate(0, 0, 3))
	mk("Read 12 books", 40, model.GoalStatusActive, base.AddDate(0, 0, 2))
	mk("Run a 10k", 100, model.GoalStatusCompleted, base.AddDate(0, 0, 1))
	mk("Learn piano", 10, model.GoalStatusPaused, base)

	svc, ctx := newAnalyticsService(t, db, &fakeGenerator{})
	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-31", AnalyticsGoals)
	require.NoError(t, err)

	assert.Equal(t, "2 active and 1 completed goals out of 4", result.Summary)
	require.Len(t, result.Trends, 4)
	assert.Equal(t, 80.0, result.Trends[0].Value)
	assert.Equal(t, "goal_1", result.Trends[0].Category)
	assert.Equal(t, "2025-03-04", result.Trends[0].Date)
	require.Len(t, result.Insights, 4)
	assert.Equal(t, `"Ship the app" is at 80.0% - excellent progress`, result.Insights[0])
	assert.Equal(t, `"Read 12 books" is at 40.0% - moderate progress`, result.Insights[1])
	assert.Equal(t, `"Run a 10k" is at 100.0% - excellent progress`, result.Insights[2])
	assert.Equal(t, `"Learn piano" is at 10.0% - needs attention`, result.Insights[3])
}

func TestAnalyzeGoalsEmpty(t *testing.T) {
	svc, ctx := newAnalyticsService(t, newTestDB(t), &fakeGenerator{})

	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-31", AnalyticsGoals)
	require.NoError(t, err)
	assert.Equal(t, "0 goals analyzed", result.Summary)
	assert.Empty(t, result.Trends)
}

func TestAnalyzeWeekly(t *testing.T) {
	db := newTestDB(t)
	// 2025-03-03 is a Monday; 2025-03-09 Sunday closes that week.
	seedNote(t, db, "2025-03-03", 9, "week one start")
	seedNote(t, db, "2025-03-09", 9, "week one end")
	seedNote(t, db, "2025-03-12", 9, "week two")

	svc, ctx := newAnalyticsService(t, db, &fakeGenerator{})
	result, err := svc.Analyze(ctx, "2025-03-01", "2025-03-31", AnalyticsWeekly)
	require.NoError(t, err)

	require.Len(t, result.Trends, 2)
	assert.Equal(t, TrendData{Date: "2025-03-03", Value: 2, Category: "weekly_activity"}, result.Trends[0])
	assert.Equal(t, TrendData{Date: "2025-03-10", Value: 1, Category: "weekly_activity"}, result.Trends[1])
	assert.Equal(t, "3 entries across 2 weeks", result.Summary)
	assert.Equal(t, "Week of 2025-03-03: 2 entries", result.Insights[0])
}

func TestAnalyzeMonthly(t *testing.T) {
	db := newTestDB(t)
	seedNote(t, db, "2025-02-27", 9, "february")
	seedNote(t, db, "2025-03-01", 9, "march one")
	seedNote(t, db, "2025-03-15", 9, "march two")

	svc, ctx := newAnalyticsService(t, db, &fakeGenerator{})
	result, err := svc.Analyze(ctx, "2025-02-01", "2025-03-31", AnalyticsMonthly)
	require.NoError(t, err)

	require.Len(t, result.Trends, 2)
	assert.Equal(t, TrendData{Date: "2025-02-01", Value: 1, Category: "monthly_activity"}, result.Trends[0])
	assert.Equal(t, TrendData{Date: "2025-03-01", Value: 2, Category: "monthly_activity"}, result.Trends[1])
	assert.Equal(t, "3 entries across 2 months", result.Summary)
	require.Len(t, result.Insights, 2)
	assert.Equal(t, "February 2025: 1 entries", result.Insights[0])
	assert.Equal(t, "March 2025: 2 entries", result.Insights[1])
}
