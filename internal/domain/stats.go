package domain

// StatsSummary aggregates a user's tracking activity.
type StatsSummary struct {
	TotalMinutes    int
	TodayMinutes    int
	WeekMinutes     int
	CompletedTimers int
	CurrentStreak   int
	XP              int64
	Level           int
}
