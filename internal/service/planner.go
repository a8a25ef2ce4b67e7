package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/ai"
	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// TimeSlot is one hour of a generated day plan.
type TimeSlot struct {
	Hour        int    `json:"hour"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high, medium, low
	Category    string `json:"category"` // work, study, break, personal, exercise, meal, leisure
}

// PlanPreferences tune the generated schedule.
type PlanPreferences struct {
	WakeHour       int
	SleepHour      int
	FocusHours     int
	BreakFrequency int // minutes; reserved, the synthesizer uses a fixed break layout
}

// DefaultPlanPreferences returns the documented preference defaults.
func DefaultPlanPreferences() PlanPreferences {
	return PlanPreferences{WakeHour: 7, SleepHour: 23, FocusHours: 4, BreakFrequency: 90}
}

// Schedule provenance markers.
const (
	ScheduleSourceParsed      = "parsed"
	ScheduleSourceSynthesized = "synthesized"
)

// ScheduleResult is a full-day schedule tagged with how it was produced,
// so callers can tell a model-backed plan from the deterministic fallback
// without inspecting slot content.
type ScheduleResult struct {
	Date   string
	Source string
	Slots  []TimeSlot
}

// errMalformedSchedule marks a narrative that did not yield any valid time
// slots. It never leaves this package: the caller's recovery is the
// fallback synthesizer, not an error response.
var errMalformedSchedule = errors.New("malformed schedule payload")

// bracketedArray matches the first [...] substring, spanning newlines, so a
// JSON payload can be fished out of surrounding prose.
var bracketedArray = regexp.MustCompile(`(?s)\[.*\]`)

// parseScheduleSlots extracts a validated slot list from a free-text
// narrative. Records missing any of the five required fields are dropped
// silently; an empty validated list counts as a parse failure.
func parseScheduleSlots(narrative string) ([]TimeSlot, error) {
	candidate := bracketedArray.FindString(narrative)
	if candidate == "" {
		candidate = narrative
	}

	var records []struct {
		Hour        *int    `json:"hour"`
		Activity    *string `json:"activity"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
		Category    *string `json:"category"`
	}
	if err := json.Unmarshal([]byte(candidate), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedSchedule, err)
	}

	var slots []TimeSlot
	for _, rec := range records {
		if rec.Hour == nil || rec.Activity == nil || rec.Description == nil || rec.Priority == nil || rec.Category == nil {
			continue
		}
		if *rec.Hour < 0 || *rec.Hour > 23 {
			continue
		}
		slots = append(slots, TimeSlot{
			Hour:        *rec.Hour,
			Activity:    *rec.Activity,
			Description: *rec.Description,
			Priority:    strings.ToLower(*rec.Priority),
			Category:    *rec.Category,
		})
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no valid time slots", errMalformedSchedule)
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Hour < slots[j].Hour })
	return slots, nil
}

// PlannerService builds next-day schedules: model-generated when the
// narrative parses, deterministic fallback otherwise. A backend failure is
// never surfaced; it only degrades the plan to the synthesized one.
type PlannerService struct {
	noteRepo     *repository.NoteRepository
	goalRepo     *repository.GoalRepository
	analysisRepo *repository.AnalysisRepository
	generator    ai.Generator
}

func NewPlannerService(
	noteRepo *repository.NoteRepository,
	goalRepo *repository.GoalRepository,
	analysisRepo *repository.AnalysisRepository,
	generator ai.Generator,
) *PlannerService {
	return &PlannerService{
		noteRepo:     noteRepo,
		goalRepo:     goalRepo,
		analysisRepo: analysisRepo,
		generator:    generator,
	}
}

func validatePreferences(prefs PlanPreferences) error {
	if prefs.WakeHour < 0 || prefs.WakeHour > 23 || prefs.SleepHour < 0 || prefs.SleepHour > 23 {
		return fmt.Errorf("%w: wake and sleep hours must be 0-23", ErrInvalidRange)
	}
	if prefs.WakeHour >= prefs.SleepHour {
		return fmt.Errorf("%w: wake hour %d must precede sleep hour %d", ErrInvalidRange, prefs.WakeHour, prefs.SleepHour)
	}
	if prefs.FocusHours < 0 {
		return fmt.Errorf("%w: focus hours must not be negative", ErrInvalidRange)
	}
	return nil
}

// PlanDay produces an hour-by-hour schedule for the day after the given
// date's entries. It always returns a non-empty, hour-ordered schedule.
func (s *PlannerService) PlanDay(ctx context.Context, date string, prefs PlanPreferences) (*ScheduleResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRange, date)
	}
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}

	narrative, err := s.narrativeForDate(ctx, date, prefs)
	if err != nil {
		// Backend down or timed out: treated exactly like a parse failure.
		log.Printf("planner: generation failed, using fallback: %v", err)
		narrative = s.storedNarrative(ctx, date)
	}

	slots, parseErr := parseScheduleSlots(narrative)
	if parseErr != nil {
		return &ScheduleResult{
			Date:   date,
			Source: ScheduleSourceSynthesized,
			Slots:  SynthesizeSchedule(narrative, prefs),
		}, nil
	}

	return &ScheduleResult{Date: date, Source: ScheduleSourceParsed, Slots: slots}, nil
}

// narrativeForDate asks the generation backend for a schedule narrative
// built from the date's notes and the active goals.
func (s *PlannerService) narrativeForDate(ctx context.Context, date string, prefs PlanPreferences) (string, error) {
	notes, err := s.noteRepo.ListByDate(ctx, date)
	if err != nil {
		return "", err
	}
	goals, err := s.goalRepo.List(ctx, repository.GoalFilter{Status: model.GoalStatusActive})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are a personal productivity coach. Based on the journal entries and goals below, ")
	sb.WriteString("plan tomorrow hour by hour.\n\n")
	fmt.Fprintf(&sb, "Respond with a JSON array of objects, one per hour from %d to %d, ", prefs.WakeHour, prefs.SleepHour-1)
	sb.WriteString(`each with fields "hour" (int), "activity" (short label), "description", `)
	sb.WriteString(`"priority" ("high"/"medium"/"low") and "category" (work/study/break/personal/exercise/meal/leisure).`)
	sb.WriteString("\n\nToday's entries:\n")
	for _, note := range notes {
		if strings.TrimSpace(note.Content) == "" {
			continue
		}
		fmt.Fprintf(&sb, "- %02d:00: %s\n", note.Hour, note.Content)
	}
	sb.WriteString("\nActive goals:\n")
	for _, goal := range goals {
		fmt.Fprintf(&sb, "- %s (%.0f%% done): %s\n", goal.Title, goal.Progress, goal.Description)
	}

	text, err := s.generator.Generate(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return text, nil
}

// storedNarrative pulls the saved analysis text for the date so the
// fallback's keyword heuristics still have something to chew on when the
// backend is down. Empty string when no analysis exists.
func (s *PlannerService) storedNarrative(ctx context.Context, date string) string {
	analysis, err := s.analysisRepo.FindByDate(ctx, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("planner: load analysis for %s: %v", date, err)
		}
		return ""
	}
	return analysis.AIResponse
}
