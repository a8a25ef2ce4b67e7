package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// ExportedNote is the flat export shape of one note.
type ExportedNote struct {
	ID        uint     `json:"id"`
	Date      string   `json:"date"`
	Hour      int      `json:"hour"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ExportedGoal is the flat export shape of one goal.
type ExportedGoal struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Progress    float64 `json:"progress"`
	Status      string  `json:"status"`
	TargetDate  string  `json:"target_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ExportService renders notes and goals as JSON-shaped records or CSV text.
type ExportService struct {
	noteRepo *repository.NoteRepository
	goalRepo *repository.GoalRepository
}

func NewExportService(noteRepo *repository.NoteRepository, goalRepo *repository.GoalRepository) *ExportService {
	return &ExportService{noteRepo: noteRepo, goalRepo: goalRepo}
}

func (s *ExportService) Notes(ctx context.Context, startDate, endDate string) ([]ExportedNote, error) {
	notes, err := s.noteRepo.ListRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	exported := make([]ExportedNote, 0, len(notes))
	for _, note := range notes {
		names := make([]string, 0, len(note.Tags))
		for _, tag := range note.Tags {
			names = append(names, tag.Name)
		}
		exported = append(exported, ExportedNote{
			ID:        note.ID,
			Date:      note.Date,
			Hour:      note.Hour,
			Content:   note.Content,
			Tags:      names,
			CreatedAt: note.CreatedAt.Format(time.RFC3339),
			UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
		})
	}
	return exported, nil
}

func (s *ExportService) NotesCSV(ctx context.Context, startDate, endDate string) (string, error) {
	notes, err := s.Notes(ctx, startDate, endDate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "date", "hour", "content", "tags", "created_at", "updated_at"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, note := range notes {
		row := []string{
			fmt.Sprintf("%d", note.ID),
			note.Date,
			fmt.Sprintf("%d", note.Hour),
			note.Content,
			strings.Join(note.Tags, ", "),
			note.CreatedAt,
			note.UpdatedAt,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *ExportService) Goals(ctx context.Context) ([]ExportedGoal, error) {
	goals, err := s.goalRepo.List(ctx, repository.GoalFilter{})
	if err != nil {
		return nil, err
	}

	exported := make([]ExportedGoal, 0, len(goals))
	for _, goal := range goals {
		exported = append(exported, exportGoal(goal))
	}
	return exported, nil
}

func (s *ExportService) GoalsCSV(ctx context.Context) (string, error) {
	goals, err := s.Goals(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "title", "description", "category", "progress", "status", "target_date", "created_at", "updated_at"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, goal := range goals {
		row := []string{
			fmt.Sprintf("%d", goal.ID),
			goal.Title,
			goal.Description,
			goal.Category,
			fmt.Sprintf("%.1f", goal.Progress),
			goal.Status,
			goal.TargetDate,
			goal.CreatedAt,
			goal.UpdatedAt,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func exportGoal(goal model.Goal) ExportedGoal {
	target := ""
	if goal.TargetDate != nil {
		target = goal.TargetDate.Format(time.RFC3339)
	}
	return ExportedGoal{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Category:    goal.Category,
		Progress:    goal.Progress,
		Status:      goal.Status,
		TargetDate:  target,
		CreatedAt:   goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   goal.UpdatedAt.Format(time.RFC3339),
	}
}
