package services

// StreakTier is the display classification of a streak counter: a flame
// color and a motivational message. Pure function of the counter value.
type StreakTier struct {
	Color   string
	Message string
}

func ClassifyStreak(currentStreak int) StreakTier {
	return StreakTier{
		Color:   streakColor(currentStreak),
		Message: streakMessage(currentStreak),
	}
}

func streakColor(currentStreak int) string {
	switch {
	case currentStreak <= 0:
		return "#9CA3AF"
	case currentStreak < 7:
		return "#FF9600"
	case currentStreak < 30:
		return "#FF4444"
	default:
		return "#FF0000"
	}
}

func streakMessage(currentStreak int) string {
	switch {
	case currentStreak <= 0:
		return "Start your journey!"
	case currentStreak == 1:
		return "First day! Keep it up!"
	case currentStreak < 7:
		return "You're on the right track!"
	case currentStreak < 30:
		return "Impressive streak!"
	case currentStreak < 100:
		return "You're amazing!"
	default:
		return "Study legend!"
	}
}
