package domain

// TimerStatus is the lifecycle state of a timer.
type TimerStatus string

const (
	TimerStatusRunning   TimerStatus = "RUNNING"
	TimerStatusPaused    TimerStatus = "PAUSED"
	TimerStatusCompleted TimerStatus = "COMPLETED"
	TimerStatusCanceled  TimerStatus = "CANCELED"
)

func (s TimerStatus) String() string { return string(s) }

func (s TimerStatus) IsValid() bool {
	switch s {
	case TimerStatusRunning, TimerStatusPaused, TimerStatusCompleted, TimerStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s TimerStatus) IsTerminal() bool {
	return s == TimerStatusCompleted || s == TimerStatusCanceled
}

// XPAction identifies why XP was granted.
type XPAction string

const (
	XPActionTimerStarted        XPAction = "TIMER_STARTED"
	XPActionTimerCompleted      XPAction = "TIMER_COMPLETED"
	XPActionTimerCancelled      XPAction = "TIMER_CANCELLED"
	XPActionStreakBonus         XPAction = "STREAK_BONUS"
	XPActionLevelUp             XPAction = "LEVEL_UP"
	XPActionDailyGoal           XPAction = "DAILY_GOAL"
	XPActionAchievementUnlocked XPAction = "ACHIEVEMENT_UNLOCKED"
)

func (a XPAction) String() string { return string(a) }

func (a XPAction) IsValid() bool {
	switch a {
	case XPActionTimerStarted, XPActionTimerCompleted, XPActionTimerCancelled,
		XPActionStreakBonus, XPActionLevelUp, XPActionDailyGoal, XPActionAchievementUnlocked:
		return true
	}
	return false
}

// ChallengeKind is the metric a daily challenge is measured by.
type ChallengeKind string

const (
	ChallengeKindTrackMinutes   ChallengeKind = "TRACK_MINUTES"
	ChallengeKindCompleteTimers ChallengeKind = "COMPLETE_TIMERS"
)

func (k ChallengeKind) String() string { return string(k) }

func (k ChallengeKind) IsValid() bool {
	switch k {
	case ChallengeKindTrackMinutes, ChallengeKindCompleteTimers:
		return true
	}
	return false
}

// AchievementKind is the statistic an achievement threshold applies to.
type AchievementKind string

const (
	AchievementKindTimersCompleted AchievementKind = "TIMERS_COMPLETED"
	AchievementKindMinutesTracked  AchievementKind = "MINUTES_TRACKED"
	AchievementKindStreakDays      AchievementKind = "STREAK_DAYS"
)

func (k AchievementKind) String() string { return string(k) }

func (k AchievementKind) IsValid() bool {
	switch k {
	case AchievementKindTimersCompleted, AchievementKindMinutesTracked, AchievementKindStreakDays:
		return true
	}
	return false
}
