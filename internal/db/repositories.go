package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Streaks      *StreakRepository
	StudyRecords *StudyRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Streaks:      NewStreakRepository(database),
		StudyRecords: NewStudyRecordRepository(database),
	}
}
