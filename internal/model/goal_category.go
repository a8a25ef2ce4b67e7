package model

import "time"

// GoalCategory groups goals by life area. Default categories are seeded
// at startup and cannot be deleted.
type GoalCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Icon        string `gorm:"default:Target"`
	Color       string `gorm:"default:#3B82F6"`
	IsDefault   bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
