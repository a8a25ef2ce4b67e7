package model

import "time"

// Milestone is a sub-deliverable of a goal. CompletedAt is set exactly
// when Completed is true and cleared when it flips back.
type Milestone struct {
	ID          uint   `gorm:"primaryKey"`
	GoalID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string
	TargetDate  *time.Time
	Completed   bool `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
}
