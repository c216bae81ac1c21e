package models

import "time"

// Streak is the per-user counter record. LongestStreak and TotalStudyDays
// only ever grow; CurrentStreak and LastStudyDate are cleared together on
// reset or when a missed day is detected.
type Streak struct {
	ID             uint       `gorm:"primaryKey"`
	UserID         uint       `gorm:"not null;uniqueIndex"`
	CurrentStreak  int        `gorm:"not null;default:0"`
	LongestStreak  int        `gorm:"not null;default:0"`
	TotalStudyDays int        `gorm:"not null;default:0"`
	LastStudyDate  *time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
