package model

import "time"

// NoteTemplate is a reusable journaling prompt.
type NoteTemplate struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Content     string `gorm:"not null"`
	Description string
	Category    string `gorm:"default:General"`
	CreatedAt   time.Time
}
