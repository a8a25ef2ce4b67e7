package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// AnalysisRepository stores per-date AI reflections.
type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) FindByDate(ctx context.Context, date string) (*model.Analysis, error) {
	var analysis model.Analysis
	if err := r.db.WithContext(ctx).Where("date = ?", date).
		Order("created_at DESC").First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// Upsert writes the analysis for a date: one logical record per date, so a
// re-analysis overwrites the existing row instead of appending.
func (r *AnalysisRepository) Upsert(ctx context.Context, analysis *model.Analysis) error {
	var existing model.Analysis
	err := r.db.WithContext(ctx).Where("date = ?", analysis.Date).First(&existing).Error
	switch {
	case err == nil:
		analysis.ID = existing.ID
		analysis.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(analysis).Error; err != nil {
			return fmt.Errorf("update analysis: %w", err)
		}
		return nil
	case err == gorm.ErrRecordNotFound:
		if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
			return fmt.Errorf("create analysis: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find analysis: %w", err)
	}
}

func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]model.Analysis, error) {
	var analyses []model.Analysis
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").Limit(limit).
		Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

// ListRange returns analyses with date in [startDate, endDate].
func (r *AnalysisRepository) ListRange(ctx context.Context, startDate, endDate string) ([]model.Analysis, error) {
	var analyses []model.Analysis
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC").
		Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}
