package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// SleepScheduleRepository manages recurring sleep intervals.
type SleepScheduleRepository struct {
	db *gorm.DB
}

func NewSleepScheduleRepository(db *gorm.DB) *SleepScheduleRepository {
	return &SleepScheduleRepository{db: db}
}

func (r *SleepScheduleRepository) FindActive(ctx context.Context) (*model.SleepSchedule, error) {
	var schedule model.SleepSchedule
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *SleepScheduleRepository) FindByID(ctx context.Context, id uint) (*model.SleepSchedule, error) {
	var schedule model.SleepSchedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *SleepScheduleRepository) Save(ctx context.Context, schedule *model.SleepSchedule) error {
	if err := r.db.WithContext(ctx).Save(schedule).Error; err != nil {
		return fmt.Errorf("save sleep schedule: %w", err)
	}
	return nil
}

// CreateActive inserts a new active schedule and deactivates every other
// one in the same transaction, keeping the at-most-one-active invariant.
func (r *SleepScheduleRepository) CreateActive(ctx context.Context, schedule *model.SleepSchedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SleepSchedule{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("deactivate schedules: %w", err)
		}
		schedule.IsActive = true
		if err := tx.Create(schedule).Error; err != nil {
			return fmt.Errorf("create sleep schedule: %w", err)
		}
		return nil
	})
}

// Activate marks the given schedule active and deactivates the rest.
func (r *SleepScheduleRepository) Activate(ctx context.Context, schedule *model.SleepSchedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SleepSchedule{}).
			Where("is_active = ? AND id <> ?", true, schedule.ID).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("deactivate schedules: %w", err)
		}
		schedule.IsActive = true
		if err := tx.Save(schedule).Error; err != nil {
			return fmt.Errorf("save sleep schedule: %w", err)
		}
		return nil
	})
}
