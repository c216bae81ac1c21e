package services

import (
	"errors"
	"strings"
	"time"

	"github.com/brunomarqs/studia/internal/models"
	"gorm.io/gorm"
)

var (
	ErrStreakLoadFailed        = errors.New("load streak failed")
	ErrStreakResetFailed       = errors.New("reset streak failed")
	ErrStudyRecordLoadFailed   = errors.New("load study records failed")
	ErrStudyRecordCreateFailed = errors.New("create study record failed")
	ErrEmptyStudyContent       = errors.New("study content is empty")
	ErrAlreadyCompletedToday   = errors.New("today already completed")
)

// StudyStats is derived per request, never persisted. WeeklyProgress is
// indexed by time.Weekday (0 = Sunday) over the current calendar week.
type StudyStats struct {
	CurrentStreak  int
	LongestStreak  int
	TotalStudyDays int
	LastStudyDate  *time.Time
	TodayCompleted bool
	WeeklyProgress [7]bool
}

type StreakStore interface {
	FindByUser(userID uint) (models.Streak, bool, error)
	RecordCompletion(record *models.StudyRecord) (models.Streak, error)
	ClearCounter(userID uint) error
	Reset(userID uint) (models.Streak, error)
}

type StudyRecordStore interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.StudyRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.StudyRecord, bool, error)
	ExistsByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (bool, error)
}

type StudyService struct {
	streaks StreakStore
	records StudyRecordStore
}

func NewStudyService(streaks StreakStore, records StudyRecordStore) *StudyService {
	return &StudyService{
		streaks: streaks,
		records: records,
	}
}

// LoadStats assembles the user's study stats for the given instant. When the
// persisted streak counter is provably stale (a full calendar day elapsed
// without a study record) the zeroing correction is written back before the
// stats are returned, so callers never observe an invalid non-zero streak.
func (service *StudyService) LoadStats(userID uint, now time.Time, location *time.Location) (StudyStats, string, error) {
	streak, found, err := service.streaks.FindByUser(userID)
	if err != nil {
		return StudyStats{}, "", ErrStreakLoadFailed
	}

	stats := StudyStats{}
	if found {
		stats.CurrentStreak = streak.CurrentStreak
		stats.LongestStreak = streak.LongestStreak
		stats.TotalStudyDays = streak.TotalStudyDays
		stats.LastStudyDate = streak.LastStudyDate
	}

	if stats.CurrentStreak > 0 && StreakBroken(stats.LastStudyDate, now, location) {
		if err := service.streaks.ClearCounter(userID); err != nil {
			return StudyStats{}, "", ErrStreakResetFailed
		}
		stats.CurrentStreak = 0
		stats.LastStudyDate = nil
	}

	weekStart, weekEnd := WeekRange(now, location)
	records, err := service.records.ListByUserRange(userID, weekStart, weekEnd)
	if err != nil {
		return StudyStats{}, "", ErrStudyRecordLoadFailed
	}
	for _, record := range records {
		stats.WeeklyProgress[int(DateAtLocation(record.StudyDate, location).Weekday())] = true
	}
	stats.TodayCompleted = stats.WeeklyProgress[int(DateAtLocation(now, location).Weekday())]

	todayContent := ""
	if stats.TodayCompleted {
		dayStart, dayEnd := DayRange(now, location)
		record, recordFound, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
		if err != nil {
			return StudyStats{}, "", ErrStudyRecordLoadFailed
		}
		if recordFound {
			todayContent = record.StudyContent
		}
	}

	return stats, todayContent, nil
}

// MarkTodayComplete appends today's study record and bumps the streak
// counters in a single transaction. The existence of today's study record is
// authoritative for the already-completed guard; the unique (user, date)
// constraint backstops concurrent calls.
func (service *StudyService) MarkTodayComplete(userID uint, content string, now time.Time, location *time.Location) (StudyStats, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return StudyStats{}, ErrEmptyStudyContent
	}

	stats, _, err := service.LoadStats(userID, now, location)
	if err != nil {
		return StudyStats{}, err
	}

	dayStart, dayEnd := DayRange(now, location)
	completed, err := service.records.ExistsByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return StudyStats{}, ErrStudyRecordLoadFailed
	}
	if completed {
		return StudyStats{}, ErrAlreadyCompletedToday
	}

	record := models.StudyRecord{
		UserID:       userID,
		StudyDate:    dayStart,
		StudyContent: trimmed,
	}
	streak, err := service.streaks.RecordCompletion(&record)
	if err != nil {
		// A concurrent completion that slipped past the guard trips the
		// unique (user, date) constraint; anything else is a real write
		// failure and must not masquerade as a finished day.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return StudyStats{}, ErrAlreadyCompletedToday
		}
		return StudyStats{}, ErrStudyRecordCreateFailed
	}

	stats.CurrentStreak = streak.CurrentStreak
	stats.LongestStreak = streak.LongestStreak
	stats.TotalStudyDays = streak.TotalStudyDays
	stats.LastStudyDate = streak.LastStudyDate
	stats.WeeklyProgress[int(dayStart.Weekday())] = true
	stats.TodayCompleted = true
	return stats, nil
}

// ResetStreak zeroes the consecutive-day counter while keeping the longest
// streak, the lifetime total and every historical study record. The returned
// stats carry cleared today/weekly state for the caller to display.
func (service *StudyService) ResetStreak(userID uint) (StudyStats, error) {
	streak, err := service.streaks.Reset(userID)
	if err != nil {
		return StudyStats{}, ErrStreakResetFailed
	}
	return StudyStats{
		LongestStreak:  streak.LongestStreak,
		TotalStudyDays: streak.TotalStudyDays,
	}, nil
}
