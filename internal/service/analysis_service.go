package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/ai"
	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// HourNote is one hour's entry as submitted for analysis.
type HourNote struct {
	Time int    `json:"time"`
	Note string `json:"note"`
}

// AnalyzeInput is a day's worth of material for the reflection prompt.
type AnalyzeInput struct {
	Notes []HourNote
	Goals string
	Date  string // defaults to today
}

// AnalyzeResult is the generated reflection.
type AnalyzeResult struct {
	Analysis       string
	ProcessingTime float64
	Date           string
}

// SMARTFieldInput asks for one generated SMART goal field.
type SMARTFieldInput struct {
	GoalTitle string
	FieldType string
	Category  string
	Existing  map[string]string
}

// SMARTFieldResult carries the generated text. FallbackUsed is true when
// the backend was unavailable and a canned suggestion was returned instead.
type SMARTFieldResult struct {
	FieldType    string
	Content      string
	GoalTitle    string
	FallbackUsed bool
}

// AnalysisService produces and stores AI day reflections. One logical
// analysis exists per date; re-analyzing updates it in place.
type AnalysisService struct {
	analysisRepo *repository.AnalysisRepository
	generator    ai.Generator
	modelName    string
	clock        func() time.Time
}

func NewAnalysisService(analysisRepo *repository.AnalysisRepository, generator ai.Generator, modelName string) *AnalysisService {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		generator:    generator,
		modelName:    modelName,
		clock:        time.Now,
	}
}

// Analyze generates a reflection for the day and upserts the stored record.
// The narrative itself is the product here, so a backend failure surfaces
// as ErrUpstreamUnavailable rather than degrading to a fallback.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	started := s.clock()

	date := input.Date
	if date == "" {
		date = started.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRange, date)
	}

	var formatted strings.Builder
	for _, hour := range input.Notes {
		if strings.TrimSpace(hour.Note) == "" {
			continue
		}
		fmt.Fprintf(&formatted, "- %d:00: %s\n", hour.Time, hour.Note)
	}

	prompt := fmt.Sprintf(`You are an AI personal growth and life optimization coach. The user has provided their notes on an hourly basis.
Analyze the following hourly notes and overall goals to provide insights into the user's
personal development, productivity, and progress. Identify patterns, optimization opportunities, and growth areas.

Please structure your response with:
1. **Daily Summary**: Overview of the day's activities and productivity
2. **Key Patterns**: Notable patterns in thoughts, activities, or behaviors
3. **Growth Opportunities**: Areas for improvement and optimization
4. **Positive Highlights**: Achievements, progress, or effective strategies
5. **Goal Progress**: Assessment of progress toward stated goals
6. **Optimization Recommendations**: Specific, actionable suggestions for tomorrow

Hourly Notes:
%s
Today's Goals:
%s

Analysis:
`, formatted.String(), input.Goals)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	elapsed := s.clock().Sub(started).Seconds()

	snapshot, err := json.Marshal(input.Notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes snapshot: %w", err)
	}

	record := model.Analysis{
		Date:           date,
		NotesContent:   snapshot,
		GoalsContent:   input.Goals,
		AIResponse:     response,
		ModelUsed:      s.modelName,
		ProcessingTime: elapsed,
	}
	if err := s.analysisRepo.Upsert(ctx, &record); err != nil {
		return nil, err
	}

	return &AnalyzeResult{Analysis: response, ProcessingTime: elapsed, Date: date}, nil
}

// History returns the most recent analyses, newest first. Limit defaults
// to 10 and is capped at 50.
func (s *AnalysisService) History(ctx context.Context, limit int) ([]model.Analysis, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return s.analysisRepo.ListRecent(ctx, limit)
}

var smartFallbacks = map[string]string{
	"description": "A focused goal to develop skills and knowledge in %s, contributing to personal and professional growth.",
	"specific":    "Complete specific milestones and deliverables related to %s.",
	"measurable":  "Track progress through concrete metrics, deadlines, and completion criteria.",
	"achievable":  "This goal is realistic given adequate time commitment and available resources.",
	"relevant":    "This goal aligns with personal development objectives in the %s category.",
	"time_bound":  "Set a specific timeline with weekly or monthly milestones leading to completion.",
}

// GenerateSMARTField drafts one SMART field for a goal. When the backend
// is down it falls back to a canned per-field suggestion.
func (s *AnalysisService) GenerateSMARTField(ctx context.Context, input SMARTFieldInput) (*SMARTFieldResult, error) {
	if input.Category == "" {
		input.Category = "Personal"
	}

	prompt, err := smartFieldPrompt(input)
	if err != nil {
		return nil, err
	}

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("smart field generation failed, using fallback: %v", err)
		return &SMARTFieldResult{
			FieldType:    input.FieldType,
			Content:      smartFallback(input),
			GoalTitle:    input.GoalTitle,
			FallbackUsed: true,
		}, nil
	}

	return &SMARTFieldResult{
		FieldType: input.FieldType,
		Content:   cleanGeneratedLine(response),
		GoalTitle: input.GoalTitle,
	}, nil
}

func smartFieldPrompt(input SMARTFieldInput) (string, error) {
	header := fmt.Sprintf("Goal: %q\nCategory: %s\n", input.GoalTitle, input.Category)

	switch input.FieldType {
	case "description":
		return header + "\nWrite a clear, motivating 2-3 sentence description for this goal. Focus on why this goal matters and what achieving it would mean.\n\nDescription:", nil
	case "specific":
		return header + "\nMake this goal specific and clear. Define exactly what will be accomplished, avoiding vague terms.\n\nSpecific goal:", nil
	case "measurable":
		extra := ""
		if v := input.Existing["specific"]; v != "" {
			extra = fmt.Sprintf("Specific criteria: %s\n", v)
		}
		return header + extra + "\nDefine how progress and completion will be measured. Include numbers, quantities, or clear completion criteria.\n\nMeasurable criteria:", nil
	case "achievable":
		return header + "\nAssess if this goal is realistic and attainable given typical constraints of time, resources, and skills.\n\nAchievability assessment:", nil
	case "relevant":
		return header + "\nExplain why this goal matters and how it aligns with broader objectives or values.\n\nRelevance:", nil
	case "time_bound":
		extra := ""
		if v := input.Existing["specific"]; v != "" {
			extra += fmt.Sprintf("Specific: %s\n", v)
		}
		if v := input.Existing["measurable"]; v != "" {
			extra += fmt.Sprintf("Measurable: %s\n", v)
		}
		return header + extra + "\nSet a realistic timeline with specific deadlines or milestones.\n\nTimeline:", nil
	default:
		return "", fmt.Errorf("%w: unknown field type %q", ErrInvalidArgument, input.FieldType)
	}
}

func smartFallback(input SMARTFieldInput) string {
	tmpl := smartFallbacks[input.FieldType]
	switch input.FieldType {
	case "description", "relevant":
		return fmt.Sprintf(tmpl, strings.ToLower(input.Category))
	case "specific":
		return fmt.Sprintf(tmpl, strings.ToLower(input.GoalTitle))
	default:
		return tmpl
	}
}

// cleanGeneratedLine picks the first substantial line of a completion,
// skipping prompt echoes and bare labels.
func cleanGeneratedLine(response string) string {
	trimmed := strings.TrimSpace(response)
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasSuffix(line, ":") && len(line) > 10 {
			return line
		}
	}
	return trimmed
}
