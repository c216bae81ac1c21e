package db

import (
	"github.com/brunomarqs/studia/internal/models"
	"gorm.io/gorm"
)

type StreakRepository struct {
	database *gorm.DB
}

func NewStreakRepository(database *gorm.DB) *StreakRepository {
	return &StreakRepository{database: database}
}

func (repo *StreakRepository) FindByUser(userID uint) (models.Streak, bool, error) {
	streak := models.Streak{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&streak)
	if result.Error != nil {
		return models.Streak{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Streak{}, false, nil
	}
	return streak, true, nil
}

// RecordCompletion persists a completed study day: the append-only study
// record and the streak counter increments happen in one transaction, so a
// failure can never leave the record stored with a stale counter.
func (repo *StreakRepository) RecordCompletion(record *models.StudyRecord) (models.Streak, error) {
	var updated models.Streak
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		var streak models.Streak
		result := tx.Where("user_id = ?", record.UserID).Limit(1).Find(&streak)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			streak = models.Streak{UserID: record.UserID}
		}

		day := record.StudyDate
		streak.CurrentStreak++
		streak.TotalStudyDays++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastStudyDate = &day

		if err := tx.Save(&streak).Error; err != nil {
			return err
		}
		updated = streak
		return nil
	})
	if err != nil {
		return models.Streak{}, err
	}
	return updated, nil
}

// ClearCounter zeroes the consecutive-day counter on an existing streak row,
// leaving longest_streak and total_study_days untouched. Missing rows are
// left missing: their derived stats are already all-zero.
func (repo *StreakRepository) ClearCounter(userID uint) error {
	return repo.database.Model(&models.Streak{}).Where("user_id = ?", userID).Updates(map[string]any{
		"current_streak":  0,
		"last_study_date": nil,
	}).Error
}

// Reset is the user-initiated destructive reset: upsert semantics, so a user
// without a streak row ends up with an explicit zero-valued one.
func (repo *StreakRepository) Reset(userID uint) (models.Streak, error) {
	var updated models.Streak
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var streak models.Streak
		result := tx.Where("user_id = ?", userID).Limit(1).Find(&streak)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			streak = models.Streak{UserID: userID}
		}

		streak.CurrentStreak = 0
		streak.LastStudyDate = nil

		if err := tx.Save(&streak).Error; err != nil {
			return err
		}
		updated = streak
		return nil
	})
	if err != nil {
		return models.Streak{}, err
	}
	return updated, nil
}
