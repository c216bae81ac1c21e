package models

import "time"

// StudyRecord is append-only: one entry per user per calendar day, kept
// forever even after the streak counter is reset.
type StudyRecord struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_user_study_date"`
	StudyDate    time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_study_date"`
	StudyContent string    `gorm:"not null"`
	CreatedAt    time.Time
}
