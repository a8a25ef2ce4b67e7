package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
	"github.com/poornima-alugubelly/flourish-ai/internal/repository"
)

// NoteInput carries note fields from the API layer.
type NoteInput struct {
	Date         string
	Hour         int
	Content      string
	RichContent  datatypes.JSON
	TagNames     []string
	TemplateID   *string
	IsSleep      bool
	SleepQuality *int
	SleepNotes   string
}

// HourSlot is one row of the 24-hour day view. ID is nil for hours with
// no note.
type HourSlot struct {
	Time         int
	ID           *uint
	Note         string
	RichContent  datatypes.JSON
	Tags         []string
	TemplateID   *string
	IsSleep      bool
	SleepQuality *int
	SleepNotes   string
}

// NoteService wraps journal note business logic.
type NoteService struct {
	noteRepo *repository.NoteRepository
	tagRepo  *repository.TagRepository
}

func NewNoteService(noteRepo *repository.NoteRepository, tagRepo *repository.TagRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo, tagRepo: tagRepo}
}

func validateNoteInput(input NoteInput) error {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRange, input.Date)
	}
	if input.Hour < 0 || input.Hour > 23 {
		return fmt.Errorf("%w: hour must be 0-23, got %d", ErrInvalidRange, input.Hour)
	}
	if input.SleepQuality != nil && (*input.SleepQuality < 1 || *input.SleepQuality > 5) {
		return fmt.Errorf("%w: sleep quality must be 1-5", ErrInvalidRange)
	}
	return nil
}

// CreateNote stores a new note. Multiple notes may exist for one
// (date, hour) slot; the day view shows the newest. Sleep entries never
// carry tags.
func (s *NoteService) CreateNote(ctx context.Context, input NoteInput) (*model.Note, error) {
	if err := validateNoteInput(input); err != nil {
		return nil, err
	}

	note := model.Note{
		Date:         input.Date,
		Hour:         input.Hour,
		Content:      input.Content,
		RichContent:  input.RichContent,
		TemplateID:   input.TemplateID,
		IsSleep:      input.IsSleep,
		SleepQuality: input.SleepQuality,
		SleepNotes:   input.SleepNotes,
	}
	if err := s.noteRepo.Create(ctx, &note); err != nil {
		return nil, err
	}

	if len(input.TagNames) > 0 && !input.IsSleep {
		tags, err := s.tagRepo.FindByNames(ctx, input.TagNames)
		if err != nil {
			return nil, err
		}
		if err := s.noteRepo.ReplaceTags(ctx, &note, tags); err != nil {
			return nil, err
		}
	}

	return &note, nil
}

// UpdateNote overwrites a note's content and tag set.
func (s *NoteService) UpdateNote(ctx context.Context, id uint, input NoteInput) (*model.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if input.SleepQuality != nil && (*input.SleepQuality < 1 || *input.SleepQuality > 5) {
		return nil, fmt.Errorf("%w: sleep quality must be 1-5", ErrInvalidRange)
	}

	note.Content = input.Content
	note.RichContent = input.RichContent
	note.TemplateID = input.TemplateID
	note.IsSleep = input.IsSleep
	note.SleepQuality = input.SleepQuality
	note.SleepNotes = input.SleepNotes
	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	var tags []model.Tag
	if len(input.TagNames) > 0 && !input.IsSleep {
		if tags, err = s.tagRepo.FindByNames(ctx, input.TagNames); err != nil {
			return nil, err
		}
	}
	if err := s.noteRepo.ReplaceTags(ctx, note, tags); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, filter repository.NoteFilter) ([]model.Note, error) {
	return s.noteRepo.List(ctx, filter)
}

// DayView returns the full 24-hour structure for a date. Hours without a
// note are present but empty. When duplicate notes exist for an hour the
// last-created one wins.
func (s *NoteService) DayView(ctx context.Context, date string) ([]HourSlot, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRange, date)
	}

	notes, err := s.noteRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	byHour := make(map[int]model.Note, len(notes))
	for _, note := range notes {
		byHour[note.Hour] = note
	}

	slots := make([]HourSlot, 0, 24)
	for hour := 0; hour < 24; hour++ {
		slot := HourSlot{Time: hour, Tags: []string{}}
		if note, ok := byHour[hour]; ok {
			id := note.ID
			slot.ID = &id
			slot.Note = note.Content
			slot.RichContent = note.RichContent
			slot.TemplateID = note.TemplateID
			slot.IsSleep = note.IsSleep
			slot.SleepQuality = note.SleepQuality
			slot.SleepNotes = note.SleepNotes
			for _, tag := range note.Tags {
				slot.Tags = append(slot.Tags, tag.Name)
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
