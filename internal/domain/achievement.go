package domain

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a catalog entry unlocked when a statistic reaches Threshold.
type Achievement struct {
	Code        string
	Name        string
	Description string
	Kind        AchievementKind
	Threshold   int
	XP          int
}

// XPAction returns the ledger action used when the achievement pays out.
func (a Achievement) XPAction() XPAction {
	if a.Kind == AchievementKindStreakDays {
		return XPActionStreakBonus
	}
	return XPActionAchievementUnlocked
}

// Reached reports whether the given progress satisfies the threshold.
func (a Achievement) Reached(p AchievementProgress) bool {
	switch a.Kind {
	case AchievementKindTimersCompleted:
		return p.TimersCompleted >= a.Threshold
	case AchievementKindMinutesTracked:
		return p.MinutesTracked >= a.Threshold
	case AchievementKindStreakDays:
		return p.StreakDays >= a.Threshold
	}
	return false
}

// AchievementProgress is the set of statistics achievements are evaluated on.
type AchievementProgress struct {
	TimersCompleted int
	MinutesTracked  int
	StreakDays      int
}

// UserAchievement records when a user unlocked an achievement.
type UserAchievement struct {
	UserID     uuid.UUID
	Code       string
	UnlockedAt time.Time
}

// Achievements is the fixed catalog, ordered for display.
var Achievements = []Achievement{
	{Code: "FIRST_TIMER", Name: "First Steps", Description: "Complete your first timer", Kind: AchievementKindTimersCompleted, Threshold: 1, XP: 10},
	{Code: "TIMERS_10", Name: "Getting Into It", Description: "Complete 10 timers", Kind: AchievementKindTimersCompleted, Threshold: 10, XP: 25},
	{Code: "TIMERS_100", Name: "Centurion", Description: "Complete 100 timers", Kind: AchievementKindTimersCompleted, Threshold: 100, XP: 100},
	{Code: "HOURS_10", Name: "Ten Hours", Description: "Track 10 hours in total", Kind: AchievementKindMinutesTracked, Threshold: 600, XP: 50},
	{Code: "HOURS_100", Name: "Deep Work", Description: "Track 100 hours in total", Kind: AchievementKindMinutesTracked, Threshold: 6000, XP: 200},
	{Code: "STREAK_3", Name: "On a Roll", Description: "Track time 3 days in a row", Kind: AchievementKindStreakDays, Threshold: 3, XP: 15},
	{Code: "STREAK_7", Name: "Full Week", Description: "Track time 7 days in a row", Kind: AchievementKindStreakDays, Threshold: 7, XP: 50},
	{Code: "STREAK_30", Name: "Habit Formed", Description: "Track time 30 days in a row", Kind: AchievementKindStreakDays, Threshold: 30, XP: 150},
}
