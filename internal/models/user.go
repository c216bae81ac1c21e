package models

import "time"

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	RecoveryCodeHash string `gorm:"not null;default:''"`
	StudyObjective   string `gorm:"not null;default:''"`
	UniqueReward     string `gorm:"not null;default:''"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time
}
