package model

import "time"

// Tag labels notes with a mood or topic (Happy, Stressed, Focused, ...).
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Color     string `gorm:"default:#3B82F6"`
	CreatedAt time.Time
	Notes     []Note `gorm:"many2many:note_tags"`
}
