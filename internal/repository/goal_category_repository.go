package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// GoalCategoryRepository manages goal categories.
type GoalCategoryRepository struct {
	db *gorm.DB
}

func NewGoalCategoryRepository(db *gorm.DB) *GoalCategoryRepository {
	return &GoalCategoryRepository{db: db}
}

func (r *GoalCategoryRepository) Create(ctx context.Context, category *model.GoalCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create goal category: %w", err)
	}
	return nil
}

func (r *GoalCategoryRepository) Save(ctx context.Context, category *model.GoalCategory) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("save goal category: %w", err)
	}
	return nil
}

func (r *GoalCategoryRepository) List(ctx context.Context) ([]model.GoalCategory, error) {
	var categories []model.GoalCategory
	if err := r.db.WithContext(ctx).
		Order("is_default DESC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GoalCategoryRepository) FindByID(ctx context.Context, id uint) (*model.GoalCategory, error) {
	var category model.GoalCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GoalCategoryRepository) FindByName(ctx context.Context, name string) (*model.GoalCategory, error) {
	var category model.GoalCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GoalCategoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.GoalCategory{}, id).Error; err != nil {
		return fmt.Errorf("delete goal category: %w", err)
	}
	return nil
}
