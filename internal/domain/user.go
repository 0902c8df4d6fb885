package domain

import (
	"time"

	"github.com/google/uuid"
)

// XPPerLevel is the amount of XP between two consecutive levels.
const XPPerLevel = 100

// User holds the gamification state of an account.
// Accounts themselves are provisioned by the identity provider.
type User struct {
	ID        uuid.UUID
	Name      string
	XP        int64
	Level     int
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LevelForXP returns the level reached with the given cumulative XP.
func LevelForXP(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/XPPerLevel) + 1
}

// LevelProgress describes how far a user is into the current level.
type LevelProgress struct {
	XP             int64
	Level          int
	XPIntoLevel    int64
	XPForNextLevel int64
}

// ProgressForXP computes LevelProgress for cumulative XP.
func ProgressForXP(xp int64) LevelProgress {
	level := LevelForXP(xp)
	into := xp - int64(level-1)*XPPerLevel
	if into < 0 {
		into = 0
	}
	return LevelProgress{
		XP:             xp,
		Level:          level,
		XPIntoLevel:    into,
		XPForNextLevel: XPPerLevel - into,
	}
}
