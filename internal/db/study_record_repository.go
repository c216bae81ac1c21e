package db

import (
	"time"

	"github.com/brunomarqs/studia/internal/models"
	"gorm.io/gorm"
)

type StudyRecordRepository struct {
	database *gorm.DB
}

func NewStudyRecordRepository(database *gorm.DB) *StudyRecordRepository {
	return &StudyRecordRepository{database: database}
}

func (repo *StudyRecordRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.StudyRecord, error) {
	records := make([]models.StudyRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND study_date >= ? AND study_date < ?", userID, fromStart, toEnd).
		Order("study_date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *StudyRecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.StudyRecord, bool, error) {
	record := models.StudyRecord{}
	result := repo.database.
		Where("user_id = ? AND study_date >= ? AND study_date < ?", userID, dayStart, dayEnd).
		Order("study_date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.StudyRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudyRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *StudyRecordRepository) ExistsByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.StudyRecord{}).
		Where("user_id = ? AND study_date >= ? AND study_date < ?", userID, dayStart, dayEnd).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
