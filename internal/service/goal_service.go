package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// RecalculateProgress recomputes a goal's progress and status from its full
// milestone set. With no milestones nothing changes: milestone-free goals
// keep their manually set progress. Returns whether the goal was modified.
//
// Status moves automatically in one direction pair only: reaching 100% flips
// an active goal to completed, and dropping below 100% reopens a completed
// goal. Paused and cancelled goals are never touched.
func RecalculateProgress(goal *model.Goal, milestones []model.Milestone) bool {
	total := len(milestones)
	if total == 0 {
		return false
	}

	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}

	progress := math.Round(float64(completed)/float64(total)*1000) / 10

	changed := progress != goal.Progress
	goal.Progress = progress

	switch {
	case progress == 100 && goal.Status == model.GoalStatusActive:
		goal.Status = model.GoalStatusCompleted
		changed = true
	case progress > 0 && progress < 100 && goal.Status == model.GoalStatusCompleted:
		goal.Status = model.GoalStatusActive
		changed = true
	}

	return changed
}

// GoalInput carries goal fields from the API layer.
type GoalInput struct {
	Title       string
	Description string
	Category    string
	TargetDate  *time.Time
	IsSmart     bool
	Specific    string
	Measurable  string
	Achievable  string
	Relevant    string
	TimeBound   string
}

// GoalUpdate carries a partial update; nil fields are left untouched.
type GoalUpdate struct {
	Title       *string
	Description *string
	Category    *string
	TargetDate  *time.Time
	Progress    *float64
	Status      *string
	Specific    *string
	Measurable  *string
	Achievable  *string
	Relevant    *string
	TimeBound   *string
}

// MilestoneInput carries milestone fields from the API layer.
type MilestoneInput struct {
	GoalID      uint
	Title       string
	Description string
	TargetDate  *time.Time
}

// MilestoneUpdate carries a partial milestone update.
type MilestoneUpdate struct {
	Title       *string
	Description *string
	TargetDate  *time.Time
	Completed   *bool
}

// GoalWithMilestones pairs a goal with its ordered milestone list.
type GoalWithMilestones struct {
	Goal       model.Goal
	Milestones []model.Milestone
}

// GoalService wraps goal and milestone business logic. Every milestone
// mutation recomputes the owning goal's progress and persists the result.
// The recompute is read-modify-write with no locking: concurrent milestone
// writes on one goal race, last writer wins. Single-user deployment.
type GoalService struct {
	goalRepo *repository.GoalRepository
	clock    func() time.Time
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo, clock: time.Now}
}

func (s *GoalService) CreateGoal(ctx context.Context, input GoalInput) (*model.Goal, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if input.Category == "" {
		input.Category = "Personal"
	}

	goal := model.Goal{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		TargetDate:  input.TargetDate,
		Status:      model.GoalStatusActive,
		IsSmart:     input.IsSmart,
		Specific:    input.Specific,
		Measurable:  input.Measurable,
		Achievable:  input.Achievable,
		Relevant:    input.Relevant,
		TimeBound:   input.TimeBound,
	}
	if err := s.goalRepo.Create(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) GetGoal(ctx context.Context, id uint) (*model.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: goal %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) ListGoals(ctx context.Context, status, category string) ([]model.Goal, error) {
	return s.goalRepo.List(ctx, repository.GoalFilter{Status: status, Category: category})
}

func (s *GoalService) ListGoalsWithMilestones(ctx context.Context, status, category string) ([]GoalWithMilestones, error) {
	goals, err := s.goalRepo.List(ctx, repository.GoalFilter{Status: status, Category: category})
	if err != nil {
		return nil, err
	}

	result := make([]GoalWithMilestones, 0, len(goals))
	for _, goal := range goals {
		milestones, err := s.goalRepo.ListMilestones(ctx, goal.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, GoalWithMilestones{Goal: goal, Milestones: milestones})
	}
	return result, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, id uint, update GoalUpdate) (*model.Goal, error) {
	goal, err := s.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.Category != nil {
		goal.Category = *update.Category
	}
	if update.TargetDate != nil {
		goal.TargetDate = update.TargetDate
	}
	if update.Progress != nil {
		goal.Progress = math.Max(0, math.Min(100, *update.Progress))
	}
	if update.Status != nil {
		switch *update.Status {
		case model.GoalStatusActive, model.GoalStatusCompleted, model.GoalStatusPaused, model.GoalStatusCancelled:
			goal.Status = *update.Status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, *update.Status)
		}
	}
	if update.Specific != nil {
		goal.Specific = *update.Specific
	}
	if update.Measurable != nil {
		goal.Measurable = *update.Measurable
	}
	if update.Achievable != nil {
		goal.Achievable = *update.Achievable
	}
	if update.Relevant != nil {
		goal.Relevant = *update.Relevant
	}
	if update.TimeBound != nil {
		goal.TimeBound = *update.TimeBound
	}

	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// DeleteGoal removes a goal and cascades to its milestones.
func (s *GoalService) DeleteGoal(ctx context.Context, id uint) error {
	if _, err := s.GetGoal(ctx, id); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, id)
}

func (s *GoalService) CreateMilestone(ctx context.Context, input MilestoneInput) (*model.Milestone, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if _, err := s.GetGoal(ctx, input.GoalID); err != nil {
		return nil, err
	}

	milestone := model.Milestone{
		GoalID:      input.GoalID,
		Title:       input.Title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
	}
	if err := s.goalRepo.CreateMilestone(ctx, &milestone); err != nil {
		return nil, err
	}
	if err := s.recalcGoal(ctx, input.GoalID); err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (s *GoalService) ListMilestones(ctx context.Context, goalID uint) ([]model.Milestone, error) {
	if _, err := s.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}
	return s.goalRepo.ListMilestones(ctx, goalID)
}

func (s *GoalService) UpdateMilestone(ctx context.Context, id uint, update MilestoneUpdate) (*model.Milestone, error) {
	milestone, err := s.goalRepo.FindMilestone(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: milestone %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		milestone.Title = *update.Title
	}
	if update.Description != nil {
		milestone.Description = *update.Description
	}
	if update.TargetDate != nil {
		milestone.TargetDate = update.TargetDate
	}
	if update.Completed != nil {
		milestone.Completed = *update.Completed
		// CompletedAt is set iff the milestone is completed.
		if milestone.Completed {
			if milestone.CompletedAt == nil {
				now := s.clock()
				milestone.CompletedAt = &now
			}
		} else {
			milestone.CompletedAt = nil
		}
	}

	if err := s.goalRepo.SaveMilestone(ctx, milestone); err != nil {
		return nil, err
	}
	if err := s.recalcGoal(ctx, milestone.GoalID); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *GoalService) DeleteMilestone(ctx context.Context, id uint) error {
	milestone, err := s.goalRepo.FindMilestone(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: milestone %d", ErrNotFound, id)
	}
	if err != nil {
		return err
	}

	if err := s.goalRepo.DeleteMilestone(ctx, id); err != nil {
		return err
	}
	return s.recalcGoal(ctx, milestone.GoalID)
}

func (s *GoalService) recalcGoal(ctx context.Context, goalID uint) error {
	goal, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return fmt.Errorf("recalc goal %d: %w", goalID, err)
	}
	milestones, err := s.goalRepo.ListMilestones(ctx, goalID)
	if err != nil {
		return fmt.Errorf("recalc goal %d: %w", goalID, err)
	}
	if !RecalculateProgress(goal, milestones) {
		return nil
	}
	return s.goalRepo.Save(ctx, goal)
}
