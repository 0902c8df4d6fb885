package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeTargets configures the goal for each challenge kind.
type ChallengeTargets struct {
	TrackMinutes   int
	CompleteTimers int
}

// DailyChallenge is the goal of the day for every user.
type DailyChallenge struct {
	Day    time.Time
	Kind   ChallengeKind
	Target int
}

// ChallengeForDay picks the challenge for a calendar day. The choice only
// depends on the date so every instance agrees without coordination.
func ChallengeForDay(day time.Time, targets ChallengeTargets) DailyChallenge {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	if day.YearDay()%2 == 0 {
		return DailyChallenge{Day: day, Kind: ChallengeKindTrackMinutes, Target: targets.TrackMinutes}
	}
	return DailyChallenge{Day: day, Kind: ChallengeKindCompleteTimers, Target: targets.CompleteTimers}
}

// ChallengeClaim records that a user collected the reward for a day.
type ChallengeClaim struct {
	UserID    uuid.UUID
	Day       time.Time
	Kind      ChallengeKind
	XPEarned  int
	ClaimedAt time.Time
}
