package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poornima-alugubelly/flourish-ai/internal/model"
)

// NoteRepository handles CRUD for journal notes.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Save(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).Preload("Tags").First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// NoteFilter narrows List results. Zero values mean no filtering.
type NoteFilter struct {
	Date   string
	Tag    string
	Search string
}

func (r *NoteRepository) List(ctx context.Context, filter NoteFilter) ([]model.Note, error) {
	query := r.db.WithContext(ctx).Model(&model.Note{}).Preload("Tags")

	if filter.Date != "" {
		query = query.Where("notes.date = ?", filter.Date)
	}
	if filter.Tag != "" {
		query = query.
			Joins("JOIN note_tags ON note_tags.note_id = notes.id").
			Joins("JOIN tags ON tags.id = note_tags.tag_id").
			Where("tags.name = ?", filter.Tag)
	}
	if filter.Search != "" {
		query = query.Where("notes.content LIKE ?", "%"+filter.Search+"%")
	}

	var notes []model.Note
	if err := query.Order("notes.date DESC, notes.hour ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListByDate returns a date's notes ordered by hour then id, so that when
// duplicate notes exist for an hour the newest one comes last.
func (r *NoteRepository) ListByDate(ctx context.Context, date string) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Preload("Tags").
		Where("date = ?", date).
		Order("hour ASC, id ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListRange returns notes with date in [startDate, endDate], both inclusive.
func (r *NoteRepository) ListRange(ctx context.Context, startDate, endDate string) ([]model.Note, error) {
	query := r.db.WithContext(ctx).Model(&model.Note{}).Preload("Tags")
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	var notes []model.Note
	if err := query.Order("date ASC, hour ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) DeleteSleepByDate(ctx context.Context, date string) error {
	if err := r.db.WithContext(ctx).
		Where("date = ? AND is_sleep = ?", date, true).
		Delete(&model.Note{}).Error; err != nil {
		return fmt.Errorf("delete sleep notes: %w", err)
	}
	return nil
}

func (r *NoteRepository) CreateBatch(ctx context.Context, notes []model.Note) error {
	if len(notes) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&notes).Error; err != nil {
		return fmt.Errorf("create notes: %w", err)
	}
	return nil
}

// ReplaceTags swaps the note's tag set for the given tags.
func (r *NoteRepository) ReplaceTags(ctx context.Context, note *model.Note, tags []model.Tag) error {
	assoc := r.db.WithContext(ctx).Model(note).Association("Tags")
	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return fmt.Errorf("clear note tags: %w", err)
		}
		note.Tags = nil
		return nil
	}
	if err := assoc.Replace(&tags); err != nil {
		return fmt.Errorf("replace note tags: %w", err)
	}
	note.Tags = tags
	return nil
}
