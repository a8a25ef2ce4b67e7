package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// GoalCategoryInput carries goal category fields from the API layer.
type GoalCategoryInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

// GoalCategoryUpdate carries a partial update; nil fields are untouched.
type GoalCategoryUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
}

// GoalCategoryService manages goal categories. Default categories cannot
// be deleted, and a category in use by goals cannot be deleted either.
type GoalCategoryService struct {
	categoryRepo *repository.GoalCategoryRepository
	goalRepo     *repository.GoalRepository
}

func NewGoalCategoryService(categoryRepo *repository.GoalCategoryRepository, goalRepo *repository.GoalRepository) *GoalCategoryService {
	return &GoalCategoryService{categoryRepo: categoryRepo, goalRepo: goalRepo}
}

func (s *GoalCategoryService) List(ctx context.Context) ([]model.GoalCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *GoalCategoryService) Get(ctx context.Context, id uint) (*model.GoalCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: goal category %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *GoalCategoryService) Create(ctx context.Context, input GoalCategoryInput) (*model.GoalCategory, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if _, err := s.categoryRepo.FindByName(ctx, input.Name); err == nil {
		return nil, fmt.Errorf("%w: category name %q already exists", ErrInvalidArgument, input.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := model.GoalCategory{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
	}
	if category.Icon == "" {
		category.Icon = "Target"
	}
	if category.Color == "" {
		category.Color = "#3B82F6"
	}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GoalCategoryService) Update(ctx context.Context, id uint, update GoalCategoryUpdate) (*model.GoalCategory, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != category.Name {
		if _, err := s.categoryRepo.FindByName(ctx, *update.Name); err == nil {
			return nil, fmt.Errorf("%w: category name %q already exists", ErrInvalidArgument, *update.Name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if update.Icon != nil {
		category.Icon = *update.Icon
	}
	if update.Color != nil {
		category.Color = *update.Color
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *GoalCategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return fmt.Errorf("%w: default categories cannot be deleted", ErrInvalidArgument)
	}

	inUse, err := s.goalRepo.CountByCategory(ctx, category.Name)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %d goals are using category %q", ErrInvalidArgument, inUse, category.Name)
	}

	return s.categoryRepo.Delete(ctx, id)
}
