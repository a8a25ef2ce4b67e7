package service

import (
	"context"
	"fmt"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// TagService exposes tag lookup and creation.
type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) CreateTag(ctx context.Context, name, color string) (*model.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if color == "" {
		color = "#3B82F6"
	}
	tag := model.Tag{Name: name, Color: color}
	if err := s.tagRepo.Create(ctx, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}
