package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// ExpandSleepHours expands a recurring sleep interval into the ordered hour
// slots it covers. start < end is a same-day interval [start, end);
// start >= end wraps past midnight: [start..23] then [0..end). Equal hours
// take the wraparound branch and produce the full 24-hour cycle.
func ExpandSleepHours(startHour, endHour int) ([]int, error) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 {
		return nil, fmt.Errorf("%w: hours must be 0-23, got start=%d end=%d", ErrInvalidRange, startHour, endHour)
	}

	var hours []int
	if startHour < endHour {
		for h := startHour; h < endHour; h++ {
			hours = append(hours, h)
		}
		return hours, nil
	}

	for h := startHour; h < 24; h++ {
		hours = append(hours, h)
	}
	for h := 0; h < endHour; h++ {
		hours = append(hours, h)
	}
	return hours, nil
}

// SleepInput carries sleep schedule fields from the API layer.
type SleepInput struct {
	StartHour      int
	EndHour        int
	DefaultQuality *int
}

// SleepUpdate carries a partial update; nil fields are left untouched.
type SleepUpdate struct {
	StartHour      *int
	EndHour        *int
	DefaultQuality *int
	IsActive       *bool
}

// SleepService manages sleep schedules and materializes them as notes.
type SleepService struct {
	sleepRepo *repository.SleepScheduleRepository
	noteRepo  *repository.NoteRepository
}

func NewSleepService(sleepRepo *repository.SleepScheduleRepository, noteRepo *repository.NoteRepository) *SleepService {
	return &SleepService{sleepRepo: sleepRepo, noteRepo: noteRepo}
}

// Active returns the currently active schedule, or nil if none exists.
func (s *SleepService) Active(ctx context.Context) (*model.SleepSchedule, error) {
	schedule, err := s.sleepRepo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// SetSchedule creates a new active schedule, deactivating any others.
func (s *SleepService) SetSchedule(ctx context.Context, input SleepInput) (*model.SleepSchedule, error) {
	if _, err := ExpandSleepHours(input.StartHour, input.EndHour); err != nil {
		return nil, err
	}
	if input.DefaultQuality != nil && (*input.DefaultQuality < 1 || *input.DefaultQuality > 5) {
		return nil, fmt.Errorf("%w: default quality must be 1-5", ErrInvalidRange)
	}

	schedule := model.SleepSchedule{
		StartHour:      input.StartHour,
		EndHour:        input.EndHour,
		DefaultQuality: input.DefaultQuality,
	}
	if err := s.sleepRepo.CreateActive(ctx, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateSchedule applies a partial update to an existing schedule.
// Setting IsActive to true deactivates every other schedule.
func (s *SleepService) UpdateSchedule(ctx context.Context, id uint, update SleepUpdate) (*model.SleepSchedule, error) {
	schedule, err := s.sleepRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: sleep schedule %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if update.StartHour != nil {
		schedule.StartHour = *update.StartHour
	}
	if update.EndHour != nil {
		schedule.EndHour = *update.EndHour
	}
	if update.DefaultQuality != nil {
		schedule.DefaultQuality = update.DefaultQuality
	}
	if _, err := ExpandSleepHours(schedule.StartHour, schedule.EndHour); err != nil {
		return nil, err
	}

	if update.IsActive != nil && *update.IsActive {
		if err := s.sleepRepo.Activate(ctx, schedule); err != nil {
			return nil, err
		}
		return schedule, nil
	}
	if update.IsActive != nil {
		schedule.IsActive = false
	}
	if err := s.sleepRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ApplyToDate materializes the active schedule as sleep notes for a date,
// replacing any previous sleep notes for that date. Applying the same
// schedule twice yields the same final set of notes. The delete-then-create
// pair is a read-modify-write without locking; with a single user writing,
// that is acceptable.
func (s *SleepService) ApplyToDate(ctx context.Context, date string) ([]int, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRange, date)
	}

	schedule, err := s.sleepRepo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no active sleep schedule", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	hours, err := ExpandSleepHours(schedule.StartHour, schedule.EndHour)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.DeleteSleepByDate(ctx, date); err != nil {
		return nil, err
	}

	notes := make([]model.Note, 0, len(hours))
	for _, hour := range hours {
		notes = append(notes, model.Note{
			Date:         date,
			Hour:         hour,
			IsSleep:      true,
			SleepQuality: schedule.DefaultQuality,
		})
	}
	if err := s.noteRepo.CreateBatch(ctx, notes); err != nil {
		return nil, err
	}

	return hours, nil
}
