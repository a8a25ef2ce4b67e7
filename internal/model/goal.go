package model

import "time"

// Goal lifecycle statuses. Only active<->completed transitions happen
// automatically (milestone recompute); paused and cancelled are manual.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
	GoalStatusCancelled = "cancelled"
)

// Goal is a SMART goal with milestone-driven progress.
type Goal struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Category    string     `gorm:"default:Personal"`
	TargetDate  *time.Time
	Progress    float64 `gorm:"default:0"`
	Status      string  `gorm:"default:active"`
	IsSmart     bool    `gorm:"default:true"`
	Specific    string
	Measurable  string
	Achievable  string
	Relevant    string
	TimeBound   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Milestones  []Milestone `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
}
