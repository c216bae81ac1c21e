package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekRange returns the calendar-week window used for weekly progress:
// Sunday 00:00 local through the end of the reference day, half-open.
func WeekRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	dayStart, dayEnd := DayRange(value, location)
	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	return weekStart, dayEnd
}

// StreakBroken reports whether a positive streak counter is stale: the last
// recorded study day is neither today nor yesterday on the local calendar.
// A missing last date with a positive counter counts as broken too.
func StreakBroken(lastStudyDate *time.Time, now time.Time, location *time.Location) bool {
	if lastStudyDate == nil {
		return true
	}
	today := DateAtLocation(now, location)
	yesterday := today.AddDate(0, 0, -1)
	last := DateAtLocation(*lastStudyDate, location)
	return !last.Equal(today) && !last.Equal(yesterday)
}
