package model

import "time"

// SleepSchedule is a recurring sleep interval. StartHour >= EndHour means
// the interval wraps past midnight (the usual case). At most one schedule
// is active at a time; activating one deactivates the rest.
type SleepSchedule struct {
	ID             uint `gorm:"primaryKey"`
	StartHour      int  `gorm:"not null"`
	EndHour        int  `gorm:"not null"`
	DefaultQuality *int
	IsActive       bool `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
