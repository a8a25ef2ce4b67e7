package model

import (
	"time"

	"gorm.io/datatypes"
)

// Note is a single journal entry for one hour of one day.
// Dates are YYYY-MM-DD strings, hours 0-23. Sleep entries are generated
// from the active SleepSchedule and carry no tags.
type Note struct {
	ID           uint   `gorm:"primaryKey"`
	Date         string `gorm:"index;not null"`
	Hour         int    `gorm:"not null"`
	Content      string
	RichContent  datatypes.JSON
	TemplateID   *string
	IsSleep      bool `gorm:"default:false"`
	SleepQuality *int
	SleepNotes   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Tags         []Tag `gorm:"many2many:note_tags"`
}
