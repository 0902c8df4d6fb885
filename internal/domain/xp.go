package domain

import (
	"time"

	"github.com/google/uuid"
)

// XPHistory is an append-only ledger row.
type XPHistory struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Action      XPAction
	XPEarned    int
	Description *string
	TimerID     *uuid.UUID
	CreatedAt   time.Time
}

// XPAward is a request to credit XP to a user.
type XPAward struct {
	UserID      uuid.UUID
	Action      XPAction
	Amount      int
	Description *string
	TimerID     *uuid.UUID
}

// XPAwardResult is the user's standing after an award.
type XPAwardResult struct {
	Awarded   int
	TotalXP   int64
	Level     int
	LeveledUp bool
}

// LeaderboardRow is one ranked user.
type LeaderboardRow struct {
	Rank   int
	UserID uuid.UUID
	Name   string
	XP     int64
	Level  int
}
