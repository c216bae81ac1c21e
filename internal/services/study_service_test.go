package services

import (
	"errors"
	"testing"
	"time"

	"github.com/brunomarqs/studia/internal/models"
	"gorm.io/gorm"
)

type stubStreakStore struct {
	streak  models.Streak
	found   bool
	findErr error

	clearCalls int
	clearErr   error

	recorded  []models.StudyRecord
	recordErr error

	resetCalls int
	resetErr   error
}

func (stub *stubStreakStore) FindByUser(uint) (models.Streak, bool, error) {
	if stub.findErr != nil {
		return models.Streak{}, false, stub.findErr
	}
	return stub.streak, stub.found, nil
}

func (stub *stubStreakStore) RecordCompletion(record *models.StudyRecord) (models.Streak, error) {
	if stub.recordErr != nil {
		return models.Streak{}, stub.recordErr
	}
	stub.recorded = append(stub.recorded, *record)

	updated := stub.streak
	day := record.StudyDate
	updated.CurrentStreak++
	updated.TotalStudyDays++
	if updated.CurrentStreak > updated.LongestStreak {
		updated.LongestStreak = updated.CurrentStreak
	}
	updated.LastStudyDate = &day
	stub.streak = updated
	stub.found = true
	return updated, nil
}

func (stub *stubStreakStore) ClearCounter(uint) error {
	if stub.clearErr != nil {
		return stub.clearErr
	}
	stub.clearCalls++
	stub.streak.CurrentStreak = 0
	stub.streak.LastStudyDate = nil
	return nil
}

func (stub *stubStreakStore) Reset(uint) (models.Streak, error) {
	if stub.resetErr != nil {
		return models.Streak{}, stub.resetErr
	}
	stub.resetCalls++
	stub.streak.CurrentStreak = 0
	stub.streak.LastStudyDate = nil
	stub.found = true
	return stub.streak, nil
}

type stubStudyRecordStore struct {
	records   []models.StudyRecord
	listErr   error
	findErr   error
	existsErr error
}

func (stub *stubStudyRecordStore) ListByUserRange(_ uint, fromStart time.Time, toEnd time.Time) ([]models.StudyRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	matched := make([]models.StudyRecord, 0)
	for _, record := range stub.records {
		if !record.StudyDate.Before(fromStart) && record.StudyDate.Before(toEnd) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (stub *stubStudyRecordStore) FindByUserAndDayRange(_ uint, dayStart time.Time, dayEnd time.Time) (models.StudyRecord, bool, error) {
	if stub.findErr != nil {
		return models.StudyRecord{}, false, stub.findErr
	}
	for _, record := range stub.records {
		if !record.StudyDate.Before(dayStart) && record.StudyDate.Before(dayEnd) {
			return record, true, nil
		}
	}
	return models.StudyRecord{}, false, nil
}

func (stub *stubStudyRecordStore) ExistsByUserAndDayRange(_ uint, dayStart time.Time, dayEnd time.Time) (bool, error) {
	if stub.existsErr != nil {
		return false, stub.existsErr
	}
	for _, record := range stub.records {
		if !record.StudyDate.Before(dayStart) && record.StudyDate.Before(dayEnd) {
			return true, nil
		}
	}
	return false, nil
}

func TestLoadStatsDefaultsWithoutStreakRecord(t *testing.T) {
	t.Parallel()

	service := NewStudyService(&stubStreakStore{}, &stubStudyRecordStore{})
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	stats, todayContent, err := service.LoadStats(1, now, time.UTC)
	if err != nil {
		t.Fatalf("LoadStats() unexpected error: %v", err)
	}
	if stats.CurrentStreak != 0 || stats.LongestStreak != 0 || stats.TotalStudyDays != 0 {
		t.Fatalf("expected zero-valued stats, got %+v", stats)
	}
	if stats.LastStudyDate != nil {
		t.Fatalf("expected nil last study date, got %v", stats.LastStudyDate)
	}
	if stats.TodayCompleted || todayContent != "" {
		t.Fatalf("expected no completion for today, got %+v / %q", stats, todayContent)
	}
	for index, done := range stats.WeeklyProgress {
		if done {
			t.Fatalf("expected empty weekly progress, day %d is set", index)
		}
	}
}

func TestLoadStatsAutoResetsStaleStreak(t *testing.T) {
	t.Parallel()

	lastStudy := mustParseDay(t, "2026-08-23")
	streaks := &stubStreakStore{
		streak: models.Streak{
			UserID:         1,
			CurrentStreak:  5,
			LongestStreak:  10,
			TotalStudyDays: 24,
			LastStudyDate:  &lastStudy,
		},
		found: true,
	}
	service := NewStudyService(streaks, &stubStudyRecordStore{})
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	stats, _, err := service.LoadStats(1, now, time.UTC)
	if err != nil {
		t.Fatalf("LoadStats() unexpected error: %v", err)
	}
	if streaks.clearCalls != 1 {
		t.Fatalf("expected one persisted counter clear, got %d", streaks.clearCalls)
	}
	if stats.CurrentStreak != 0 {
		t.Fatalf("expected current streak reset to 0, got %d", stats.CurrentStreak)
	}
	if stats.LastStudyDate != nil {
		t.Fatalf("expected cleared last study date, got %v", stats.LastStudyDate)
	}
	if stats.LongestStreak != 10 || stats.TotalStudyDays != 24 {
		t.Fatalf("expected longest/total untouched, got %+v", stats)
	}
}

func TestLoadStatsKeepsFreshStreak(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	for _, day := range []string{"2026-08-25", "2026-08-26"} {
		lastStudy := mustParseDay(t, day)
		streaks := &stubStreakStore{
			streak: models.Streak{UserID: 1, CurrentStreak: 3, LongestStreak: 3, TotalStudyDays: 3, LastStudyDate: &lastStudy},
			found:  true,
		}
		service := NewStudyService(streaks, &stubStudyRecordStore{})

		stats, _, err := service.LoadStats(1, now, time.UTC)
		if err != nil {
			t.Fatalf("LoadStats() unexpected error: %v", err)
		}
		if streaks.clearCalls != 0 {
			t.Fatalf("last study %s: unexpected counter clear", day)
		}
		if stats.CurrentStreak != 3 {
			t.Fatalf("last study %s: expected streak 3, got %d", day, stats.CurrentStreak)
		}
		if stats.LastStudyDate == nil || !stats.LastStudyDate.Equal(lastStudy) {
			t.Fatalf("last study %s: unexpected last study date %v", day, stats.LastStudyDate)
		}
	}
}

func TestLoadStatsDerivesWeeklyProgressAndTodayContent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	today := mustParseDay(t, "2026-08-26")
	yesterday := mustParseDay(t, "2026-08-25")
	lastWeek := mustParseDay(t, "2026-08-19")
	records := &stubStudyRecordStore{records: []models.StudyRecord{
		{UserID: 1, StudyDate: yesterday, StudyContent: "Geometry"},
		{UserID: 1, StudyDate: today, StudyContent: "Algebra"},
		{UserID: 1, StudyDate: lastWeek, StudyContent: "History"},
	}}
	lastStudy := today
	streaks := &stubStreakStore{
		streak: models.Streak{UserID: 1, CurrentStreak: 2, LongestStreak: 4, TotalStudyDays: 9, LastStudyDate: &lastStudy},
		found:  true,
	}
	service := NewStudyService(streaks, records)

	stats, todayContent, err := service.LoadStats(1, now, time.UTC)
	if err != nil {
		t.Fatalf("LoadStats() unexpected error: %v", err)
	}
	if !stats.TodayCompleted {
		t.Fatal("expected today to be marked completed")
	}
	if todayContent != "Algebra" {
		t.Fatalf("expected today content Algebra, got %q", todayContent)
	}
	if !stats.WeeklyProgress[int(today.Weekday())] || !stats.WeeklyProgress[int(yesterday.Weekday())] {
		t.Fatalf("expected both study days flagged, got %v", stats.WeeklyProgress)
	}
	if stats.WeeklyProgress[int(lastWeek.Weekday())] && lastWeek.Weekday() != today.Weekday() && lastWeek.Weekday() != yesterday.Weekday() {
		t.Fatalf("record outside the current week leaked into weekly progress: %v", stats.WeeklyProgress)
	}

	// Re-running with no intervening writes yields the same derivation.
	statsAgain, contentAgain, err := service.LoadStats(1, now, time.UTC)
	if err != nil {
		t.Fatalf("second LoadStats() unexpected error: %v", err)
	}
	if statsAgain != stats || contentAgain != todayContent {
		t.Fatalf("expected idempotent derivation, got %+v vs %+v", statsAgain, stats)
	}
}

func TestLoadStatsSurfacesBackendFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	service := NewStudyService(&stubStreakStore{findErr: errors.New("boom")}, &stubStudyRecordStore{})
	if _, _, err := service.LoadStats(1, now, time.UTC); !errors.Is(err, ErrStreakLoadFailed) {
		t.Fatalf("expected ErrStreakLoadFailed, got %v", err)
	}

	service = NewStudyService(&stubStreakStore{}, &stubStudyRecordStore{listErr: errors.New("boom")})
	if _, _, err := service.LoadStats(1, now, time.UTC); !errors.Is(err, ErrStudyRecordLoadFailed) {
		t.Fatalf("expected ErrStudyRecordLoadFailed, got %v", err)
	}
}

func TestMarkTodayCompleteIncrementsOnce(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	streaks := &stubStreakStore{
		streak: models.Streak{UserID: 1, CurrentStreak: 0, LongestStreak: 4, TotalStudyDays: 9},
		found:  true,
	}
	records := &stubStudyRecordStore{}
	service := NewStudyService(streaks, records)

	stats, err := service.MarkTodayComplete(1, "  Algebra  ", now, time.UTC)
	if err != nil {
		t.Fatalf("MarkTodayComplete() unexpected error: %v", err)
	}
	if stats.CurrentStreak != 1 {
		t.Fatalf("expected current streak 1, got %d", stats.CurrentStreak)
	}
	if stats.TotalStudyDays != 10 {
		t.Fatalf("expected total study days 10, got %d", stats.TotalStudyDays)
	}
	if stats.LongestStreak != 4 {
		t.Fatalf("expected longest streak to stay 4, got %d", stats.LongestStreak)
	}
	if !stats.TodayCompleted || !stats.WeeklyProgress[int(mustParseDay(t, "2026-08-26").Weekday())] {
		t.Fatalf("expected today flagged in stats, got %+v", stats)
	}
	if stats.LastStudyDate == nil || !stats.LastStudyDate.Equal(mustParseDay(t, "2026-08-26")) {
		t.Fatalf("expected last study date today, got %v", stats.LastStudyDate)
	}

	if len(streaks.recorded) != 1 {
		t.Fatalf("expected exactly one study record, got %d", len(streaks.recorded))
	}
	if streaks.recorded[0].StudyContent != "Algebra" {
		t.Fatalf("expected trimmed content, got %q", streaks.recorded[0].StudyContent)
	}
	if !streaks.recorded[0].StudyDate.Equal(mustParseDay(t, "2026-08-26")) {
		t.Fatalf("unexpected study date %v", streaks.recorded[0].StudyDate)
	}
}

func TestMarkTodayCompleteExtendsLongestStreak(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	yesterday := mustParseDay(t, "2026-08-25")
	streaks := &stubStreakStore{
		streak: models.Streak{UserID: 1, CurrentStreak: 7, LongestStreak: 7, TotalStudyDays: 30, LastStudyDate: &yesterday},
		found:  true,
	}
	service := NewStudyService(streaks, &stubStudyRecordStore{})

	stats, err := service.MarkTodayComplete(1, "Physics", now, time.UTC)
	if err != nil {
		t.Fatalf("MarkTodayComplete() unexpected error: %v", err)
	}
	if stats.CurrentStreak != 8 || stats.LongestStreak != 8 {
		t.Fatalf("expected streak and record at 8, got %+v", stats)
	}
	if stats.TotalStudyDays != 31 {
		t.Fatalf("expected total 31, got %d", stats.TotalStudyDays)
	}
}

func TestMarkTodayCompleteRestartsAfterStaleStreak(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	threeDaysAgo := mustParseDay(t, "2026-08-23")
	streaks := &stubStreakStore{
		streak: models.Streak{UserID: 1, CurrentStreak: 5, LongestStreak: 10, TotalStudyDays: 24, LastStudyDate: &threeDaysAgo},
		found:  true,
	}
	service := NewStudyService(streaks, &stubStudyRecordStore{})

	stats, err := service.MarkTodayComplete(1, "Chemistry", now, time.UTC)
	if err != nil {
		t.Fatalf("MarkTodayComplete() unexpected error: %v", err)
	}
	if streaks.clearCalls != 1 {
		t.Fatalf("expected stale counter cleared before completing, got %d clears", streaks.clearCalls)
	}
	if stats.CurrentStreak != 1 {
		t.Fatalf("expected restarted streak of 1, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 10 || stats.TotalStudyDays != 25 {
		t.Fatalf("expected longest 10 and total 25, got %+v", stats)
	}
}

func TestMarkTodayCompleteGuards(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	today := mustParseDay(t, "2026-08-26")

	t.Run("empty content", func(t *testing.T) {
		streaks := &stubStreakStore{}
		service := NewStudyService(streaks, &stubStudyRecordStore{})

		for _, content := range []string{"", "   ", "\t\n"} {
			if _, err := service.MarkTodayComplete(1, content, now, time.UTC); !errors.Is(err, ErrEmptyStudyContent) {
				t.Fatalf("content %q: expected ErrEmptyStudyContent, got %v", content, err)
			}
		}
		if len(streaks.recorded) != 0 {
			t.Fatalf("expected no writes, got %d records", len(streaks.recorded))
		}
	})

	t.Run("already completed today", func(t *testing.T) {
		lastStudy := today
		streaks := &stubStreakStore{
			streak: models.Streak{UserID: 1, CurrentStreak: 2, LongestStreak: 2, TotalStudyDays: 2, LastStudyDate: &lastStudy},
			found:  true,
		}
		records := &stubStudyRecordStore{records: []models.StudyRecord{
			{UserID: 1, StudyDate: today, StudyContent: "Algebra"},
		}}
		service := NewStudyService(streaks, records)

		if _, err := service.MarkTodayComplete(1, "More algebra", now, time.UTC); !errors.Is(err, ErrAlreadyCompletedToday) {
			t.Fatalf("expected ErrAlreadyCompletedToday, got %v", err)
		}
		if len(streaks.recorded) != 0 {
			t.Fatalf("expected no writes, got %d records", len(streaks.recorded))
		}
		if streaks.streak.CurrentStreak != 2 || streaks.streak.TotalStudyDays != 2 {
			t.Fatalf("expected unchanged counters, got %+v", streaks.streak)
		}
	})
}

func TestMarkTodayCompleteDistinguishesWriteFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	t.Run("concurrent duplicate maps to already completed", func(t *testing.T) {
		streaks := &stubStreakStore{recordErr: gorm.ErrDuplicatedKey}
		service := NewStudyService(streaks, &stubStudyRecordStore{})

		if _, err := service.MarkTodayComplete(1, "Algebra", now, time.UTC); !errors.Is(err, ErrAlreadyCompletedToday) {
			t.Fatalf("expected ErrAlreadyCompletedToday, got %v", err)
		}
	})

	t.Run("backend outage stays a write failure", func(t *testing.T) {
		streaks := &stubStreakStore{recordErr: errors.New("disk I/O error")}
		service := NewStudyService(streaks, &stubStudyRecordStore{})

		_, err := service.MarkTodayComplete(1, "Algebra", now, time.UTC)
		if !errors.Is(err, ErrStudyRecordCreateFailed) {
			t.Fatalf("expected ErrStudyRecordCreateFailed, got %v", err)
		}
		if errors.Is(err, ErrAlreadyCompletedToday) {
			t.Fatal("a failed write must not report the day as completed")
		}
	})

	t.Run("existence check failure surfaces as load error", func(t *testing.T) {
		records := &stubStudyRecordStore{existsErr: errors.New("query failed")}
		service := NewStudyService(&stubStreakStore{}, records)

		if _, err := service.MarkTodayComplete(1, "Algebra", now, time.UTC); !errors.Is(err, ErrStudyRecordLoadFailed) {
			t.Fatalf("expected ErrStudyRecordLoadFailed, got %v", err)
		}
	})
}

func TestResetStreakPreservesHistory(t *testing.T) {
	t.Parallel()

	lastStudy := mustParseDay(t, "2026-08-26")
	streaks := &stubStreakStore{
		streak: models.Streak{UserID: 1, CurrentStreak: 6, LongestStreak: 15, TotalStudyDays: 40, LastStudyDate: &lastStudy},
		found:  true,
	}
	service := NewStudyService(streaks, &stubStudyRecordStore{})

	stats, err := service.ResetStreak(1)
	if err != nil {
		t.Fatalf("ResetStreak() unexpected error: %v", err)
	}
	if streaks.resetCalls != 1 {
		t.Fatalf("expected one persisted reset, got %d", streaks.resetCalls)
	}
	if stats.CurrentStreak != 0 || stats.LastStudyDate != nil {
		t.Fatalf("expected cleared counter, got %+v", stats)
	}
	if stats.LongestStreak != 15 || stats.TotalStudyDays != 40 {
		t.Fatalf("expected longest 15 and total 40 preserved, got %+v", stats)
	}
	if stats.TodayCompleted {
		t.Fatal("expected today completion cleared")
	}
	for index, done := range stats.WeeklyProgress {
		if done {
			t.Fatalf("expected weekly progress cleared, day %d is set", index)
		}
	}
}

func TestCountersNeverDecreaseAcrossOperations(t *testing.T) {
	t.Parallel()

	streaks := &stubStreakStore{}
	records := &stubStudyRecordStore{}
	service := NewStudyService(streaks, records)

	maxLongest, maxTotal := 0, 0
	day := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for step := 0; step < 10; step++ {
		stats, err := service.MarkTodayComplete(1, "Review", day, time.UTC)
		if err != nil {
			t.Fatalf("step %d: MarkTodayComplete() error: %v", step, err)
		}
		if stats.LongestStreak < maxLongest || stats.TotalStudyDays < maxTotal {
			t.Fatalf("step %d: counters decreased: %+v", step, stats)
		}
		maxLongest, maxTotal = stats.LongestStreak, stats.TotalStudyDays

		if step == 4 {
			stats, err = service.ResetStreak(1)
			if err != nil {
				t.Fatalf("step %d: ResetStreak() error: %v", step, err)
			}
			if stats.LongestStreak < maxLongest || stats.TotalStudyDays < maxTotal {
				t.Fatalf("step %d: reset decreased counters: %+v", step, stats)
			}
		}

		day = day.AddDate(0, 0, 1)
	}
}
