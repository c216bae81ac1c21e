package api

import (
	"github.com/brunomarqs/studia/internal/services"
)

const dateLayout = "2006-01-02"

type studyStatsView struct {
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	TotalStudyDays int     `json:"total_study_days"`
	LastStudyDate  *string `json:"last_study_date"`
	TodayCompleted bool    `json:"today_completed"`
	WeeklyProgress []bool  `json:"weekly_progress"`
	TodayContent   string  `json:"today_content"`
	StreakColor    string  `json:"streak_color"`
	StreakMessage  string  `json:"streak_message"`
}

func buildStudyStatsView(stats services.StudyStats, todayContent string) studyStatsView {
	view := studyStatsView{
		CurrentStreak:  stats.CurrentStreak,
		LongestStreak:  stats.LongestStreak,
		TotalStudyDays: stats.TotalStudyDays,
		TodayCompleted: stats.TodayCompleted,
		WeeklyProgress: stats.WeeklyProgress[:],
		TodayContent:   todayContent,
	}
	if stats.LastStudyDate != nil {
		formatted := stats.LastStudyDate.Format(dateLayout)
		view.LastStudyDate = &formatted
	}

	tier := services.ClassifyStreak(stats.CurrentStreak)
	view.StreakColor = tier.Color
	view.StreakMessage = tier.Message
	return view
}
