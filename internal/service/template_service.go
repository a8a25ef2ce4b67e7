package service

import (
	"context"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// TemplateService exposes journaling templates.
type TemplateService struct {
	templateRepo *repository.TemplateRepository
}

func NewTemplateService(templateRepo *repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

func (s *TemplateService) ListTemplates(ctx context.Context, category string) ([]model.NoteTemplate, error) {
	return s.templateRepo.List(ctx, category)
}
