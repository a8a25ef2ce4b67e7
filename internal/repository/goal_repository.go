package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// GoalRepository handles goals and their milestones.
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) Save(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Omit("Milestones").Save(goal).Error; err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id uint) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalFilter narrows List results. Zero values mean no filtering.
type GoalFilter struct {
	Status   string
	Category string
}

func (r *GoalRepository) List(ctx context.Context, filter GoalFilter) ([]model.Goal, error) {
	query := r.db.WithContext(ctx).Model(&model.Goal{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var goals []model.Goal
	if err := query.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Delete removes a goal together with its milestones.
func (r *GoalRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", id).Delete(&model.Milestone{}).Error; err != nil {
			return fmt.Errorf("delete milestones: %w", err)
		}
		if err := tx.Delete(&model.Goal{}, id).Error; err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		return nil
	})
}

func (r *GoalRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("category = ?", category).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GoalRepository) CreateMilestone(ctx context.Context, milestone *model.Milestone) error {
	if err := r.db.WithContext(ctx).Create(milestone).Error; err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	return nil
}

func (r *GoalRepository) SaveMilestone(ctx context.Context, milestone *model.Milestone) error {
	if err := r.db.WithContext(ctx).Save(milestone).Error; err != nil {
		return fmt.Errorf("save milestone: %w", err)
	}
	return nil
}

func (r *GoalRepository) FindMilestone(ctx context.Context, id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, id).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *GoalRepository) ListMilestones(ctx context.Context, goalID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	if err := r.db.WithContext(ctx).Where("goal_id = ?", goalID).
		Order("target_date ASC, created_at ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *GoalRepository) DeleteMilestone(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Milestone{}, id).Error; err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
