package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// TemplateRepository reads note templates. Templates are seeded at startup
// and have no mutation endpoints.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) List(ctx context.Context, category string) ([]model.NoteTemplate, error) {
	query := r.db.WithContext(ctx).Model(&model.NoteTemplate{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var templates []model.NoteTemplate
	if err := query.Order("name ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
