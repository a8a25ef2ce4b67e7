package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/ai"
	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// Analysis type discriminators accepted by Analyze.
const (
	AnalyticsPatterns = "patterns"
	AnalyticsTrends   = "trends"
	AnalyticsGoals    = "goals"
	AnalyticsWeekly   = "weekly"
	AnalyticsMonthly  = "monthly"
)

// PatternAnalysis describes one recurring behavior found in the range.
type PatternAnalysis struct {
	PatternType     string   `json:"pattern_type"`
	Description     string   `json:"description"`
	Frequency       int      `json:"frequency"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// TrendData is one point of a time series.
type TrendData struct {
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// AnalyticsResult is the uniform response shape shared by all strategies.
type AnalyticsResult struct {
	Summary  string            `json:"summary"`
	Patterns []PatternAnalysis `json:"patterns"`
	Trends   []TrendData       `json:"trends"`
	Insights []string          `json:"insights"`
}

// AnalyticsService aggregates notes, analyses and goals over a date range
// into heuristic summaries. The patterns strategy may consult the
// generation backend; every other strategy is fully deterministic, and a
// backend failure only degrades patterns to its deterministic form.
type AnalyticsService struct {
	noteRepo  *repository.NoteRepository
	goalRepo  *repository.GoalRepository
	generator ai.Generator
}

func NewAnalyticsService(noteRepo *repository.NoteRepository, goalRepo *repository.GoalRepository, generator ai.Generator) *AnalyticsService {
	return &AnalyticsService{noteRepo: noteRepo, goalRepo: goalRepo, generator: generator}
}

// Analyze dispatches to the strategy selected by analysisType. An unknown
// type fails before any data is read.
func (s *AnalyticsService) Analyze(ctx context.Context, startDate, endDate, analysisType string) (*AnalyticsResult, error) {
	switch analysisType {
	case AnalyticsPatterns, AnalyticsTrends, AnalyticsGoals, AnalyticsWeekly, AnalyticsMonthly:
	default:
		return nil, fmt.Errorf("%w: unknown analysis type %q", ErrInvalidArgument, analysisType)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD, got %q", ErrInvalidRange, startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date must be YYYY-MM-DD, got %q", ErrInvalidRange, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s precedes start date %s", ErrInvalidRange, endDate, startDate)
	}

	switch analysisType {
	case AnalyticsPatterns:
		return s.analyzePatterns(ctx, startDate, endDate)
	case AnalyticsTrends:
		return s.analyzeTrends(ctx, start, end)
	case AnalyticsGoals:
		return s.analyzeGoals(ctx)
	case AnalyticsWeekly:
		return s.analyzeWeekly(ctx, startDate, endDate)
	default:
		return s.analyzeMonthly(ctx, startDate, endDate)
	}
}

func emptyResult(startDate, endDate string) *AnalyticsResult {
	return &AnalyticsResult{
		Summary:  fmt.Sprintf("0 records analyzed between %s and %s", startDate, endDate),
		Patterns: []PatternAnalysis{},
		Trends:   []TrendData{},
		Insights: []string{},
	}
}

// countNonEmpty counts notes with non-empty free-text content per date.
func countNonEmpty(notes []model.Note) map[string]int {
	counts := make(map[string]int)
	for _, note := range notes {
		if strings.TrimSpace(note.Content) != "" {
			counts[note.Date]++
		}
	}
	return counts
}

func (s *AnalyticsService) analyzePatterns(ctx context.Context, startDate, endDate string) (*AnalyticsResult, error) {
	notes, err := s.noteRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return emptyResult(startDate, endDate), nil
	}

	byDate := make(map[string][]model.Note)
	for _, note := range notes {
		byDate[note.Date] = append(byDate[note.Date], note)
	}

	if narrative, err := s.extractPatterns(ctx, byDate); err == nil {
		return &AnalyticsResult{
			Summary: fmt.Sprintf("Pattern analysis of %d entries across %d days", len(notes), len(byDate)),
			Patterns: []PatternAnalysis{{
				PatternType: "ai_narrative",
				Description: strings.TrimSpace(narrative),
				Frequency:   len(notes),
				Confidence:  0.8,
			}},
			Trends:   []TrendData{},
			Insights: []string{fmt.Sprintf("%d entries across %d active days", len(notes), len(byDate))},
		}, nil
	} else {
		log.Printf("analytics: pattern extraction failed, using deterministic patterns: %v", err)
	}

	return &AnalyticsResult{
		Summary:  fmt.Sprintf("Pattern analysis of %d entries across %d days", len(notes), len(byDate)),
		Patterns: deterministicPatterns(notes, len(byDate)),
		Trends:   []TrendData{},
		Insights: []string{fmt.Sprintf("%d entries across %d active days", len(notes), len(byDate))},
	}, nil
}

func (s *AnalyticsService) extractPatterns(ctx context.Context, byDate map[string][]model.Note) (string, error) {
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var sb strings.Builder
	sb.WriteString("Identify recurring patterns in these journal entries. ")
	sb.WriteString("Focus on timing habits, mood cycles and productivity rhythms. Be concise.\n")
	for _, date := range dates {
		fmt.Fprintf(&sb, "\n%s:\n", date)
		for _, note := range byDate[date] {
			if strings.TrimSpace(note.Content) == "" {
				continue
			}
			fmt.Fprintf(&sb, "- %02d:00: %s\n", note.Hour, note.Content)
		}
	}

	narrative, err := s.generator.Generate(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if strings.TrimSpace(narrative) == "" {
		return "", fmt.Errorf("%w: empty pattern narrative", ErrUpstreamUnavailable)
	}
	return narrative, nil
}

// deterministicPatterns is the backend-free stand-in: the top journaling
// hours and a consistency report.
func deterministicPatterns(notes []model.Note, activeDays int) []PatternAnalysis {
	hourCounts := make(map[int]int)
	for _, note := range notes {
		hourCounts[note.Hour]++
	}

	type hourCount struct{ hour, count int }
	ranked := make([]hourCount, 0, len(hourCounts))
	for hour, count := range hourCounts {
		ranked = append(ranked, hourCount{hour, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].hour < ranked[j].hour
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	labels := make([]string, 0, len(ranked))
	frequency := 0
	for _, hc := range ranked {
		labels = append(labels, fmt.Sprintf("%02d:00", hc.hour))
		frequency += hc.count
	}

	consistencyRec := "Try to journal on more days to build a consistent record"
	if activeDays > 5 {
		consistencyRec = "Strong journaling streak - keep the daily habit going"
	}

	return []PatternAnalysis{
		{
			PatternType:     "peak_hours",
			Description:     fmt.Sprintf("Most entries are written at %s", strings.Join(labels, ", ")),
			Frequency:       frequency,
			Confidence:      0.7,
			Recommendations: []string{"Protect these hours for reflection or deep work"},
		},
		{
			PatternType:     "consistency",
			Description:     fmt.Sprintf("Entries recorded on %d distinct days", activeDays),
			Frequency:       activeDays,
			Confidence:      0.9,
			Recommendations: []string{consistencyRec},
		},
	}
}

func (s *AnalyticsService) analyzeTrends(ctx context.Context, start, end time.Time) (*AnalyticsResult, error) {
	startDate := start.Format("2006-01-02")
	endDate := end.Format("2006-01-02")

	notes, err := s.noteRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return emptyResult(startDate, endDate), nil
	}

	counts := countNonEmpty(notes)

	// Walk every day in the closed range; only days with activity emit a
	// trend point, but the mean divides by all of them.
	var (
		trends  []TrendData
		total   int
		days    int
		maxDate string
		maxN    int
	)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		days++
		n := counts[date]
		total += n
		if n > 0 {
			trends = append(trends, TrendData{Date: date, Value: float64(n), Category: "activity_level"})
		}
		if n > maxN {
			maxN = n
			maxDate = date
		}
	}

	mean := float64(total) / float64(days)
	insights := []string{
		fmt.Sprintf("Analyzed %d days", days),
		fmt.Sprintf("Peak activity: %d entries on %s", maxN, maxDate),
	}

	return &AnalyticsResult{
		Summary:  fmt.Sprintf("Average of %.1f entries per day over %d days", mean, days),
		Patterns: []PatternAnalysis{},
		Trends:   trends,
		Insights: insights,
	}, nil
}

// analyzeGoals summarizes progress across all goals regardless of the
// requested date range.
func (s *AnalyticsService) analyzeGoals(ctx context.Context) (*AnalyticsResult, error) {
	goals, err := s.goalRepo.List(ctx, repository.GoalFilter{})
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return &AnalyticsResult{
			Summary:  "0 goals analyzed",
			Patterns: []PatternAnalysis{},
			Trends:   []TrendData{},
			Insights: []string{},
		}, nil
	}

	var (
		trends    []TrendData
		insights  []string
		active    int
		completed int
	)
	for _, goal := range goals {
		trends = append(trends, TrendData{
			Date:     goal.CreatedAt.Format("2006-01-02"),
			Value:    goal.Progress,
			Category: fmt.Sprintf("goal_%d", goal.ID),
		})
		insights = append(insights, goalInsight(goal))

		switch goal.Status {
		case model.GoalStatusActive:
			active++
		case model.GoalStatusCompleted:
			completed++
		}
	}

	return &AnalyticsResult{
		Summary:  fmt.Sprintf("%d active and %d completed goals out of %d", active, completed, len(goals)),
		Patterns: []PatternAnalysis{},
		Trends:   trends,
		Insights: insights,
	}, nil
}

func goalInsight(goal model.Goal) string {
	switch {
	case goal.Progress > 75:
		return fmt.Sprintf("%q is at %.1f%% - excellent progress", goal.Title, goal.Progress)
	case goal.Progress > 50:
		return fmt.Sprintf("%q is at %.1f%% - good progress", goal.Title, goal.Progress)
	case goal.Progress > 25:
		return fmt.Sprintf("%q is at %.1f%% - moderate progress", goal.Title, goal.Progress)
	default:
		return fmt.Sprintf("%q is at %.1f%% - needs attention", goal.Title, goal.Progress)
	}
}

// weekStart returns the Monday beginning the note's ISO week.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (s *AnalyticsService) analyzeWeekly(ctx context.Context, startDate, endDate string) (*AnalyticsResult, error) {
	notes, err := s.noteRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return emptyResult(startDate, endDate), nil
	}

	weekCounts := make(map[string]int)
	total := 0
	for _, note := range notes {
		if strings.TrimSpace(note.Content) == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", note.Date)
		if err != nil {
			continue
		}
		weekCounts[weekStart(day).Format("2006-01-02")]++
		total++
	}

	weeks := make([]string, 0, len(weekCounts))
	for week := range weekCounts {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	var (
		trends   []TrendData
		insights []string
	)
	for _, week := range weeks {
		trends = append(trends, TrendData{Date: week, Value: float64(weekCounts[week]), Category: "weekly_activity"})
		insights = append(insights, fmt.Sprintf("Week of %s: %d entries", week, weekCounts[week]))
	}

	return &AnalyticsResult{
		Summary:  fmt.Sprintf("%d entries across %d weeks", total, len(weeks)),
		Patterns: []PatternAnalysis{},
		Trends:   trends,
		Insights: insights,
	}, nil
}

func (s *AnalyticsService) analyzeMonthly(ctx context.Context, startDate, endDate string) (*AnalyticsResult, error) {
	notes, err := s.noteRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return emptyResult(startDate, endDate), nil
	}

	monthCounts := make(map[string]int)
	total := 0
	for _, note := range notes {
		if strings.TrimSpace(note.Content) == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", note.Date)
		if err != nil {
			continue
		}
		monthCounts[day.Format("2006-01")]++
		total++
	}

	months := make([]string, 0, len(monthCounts))
	for month := range monthCounts {
		months = append(months, month)
	}
	sort.Strings(months)

	var (
		trends   []TrendData
		insights []string
	)
	for _, month := range months {
		first, _ := time.Parse("2006-01", month)
		trends = append(trends, TrendData{Date: month + "-01", Value: float64(monthCounts[month]), Category: "monthly_activity"})
		insights = append(insights, fmt.Sprintf("%s: %d entries", first.Format("January 2006"), monthCounts[month]))
	}

	return &AnalyticsResult{
		Summary:  fmt.Sprintf("%d entries across %d months", total, len(months)),
		Patterns: []PatternAnalysis{},
		Trends:   trends,
		Insights: insights,
	}, nil
}
