package model

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis is the stored AI reflection for one day. There is one logical
// record per date; re-analyzing a date updates the row in place.
type Analysis struct {
	ID             uint   `gorm:"primaryKey"`
	Date           string `gorm:"index;not null"`
	NotesContent   datatypes.JSON
	GoalsContent   string
	AIResponse     string
	ModelUsed      string `gorm:"default:phi3:mini"`
	ProcessingTime float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
