package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Gamification.validate(); err != nil {
		return fmt.Errorf("gamification: %w", err)
	}

	if c.Retention.TimersDays <= 0 {
		return fmt.Errorf("retention.timers_days must be > 0 (got %d)", c.Retention.TimersDays)
	}

	return nil
}

func (g *GamificationConfig) validate() error {
	if g.TimerStartedXP < 0 {
		return fmt.Errorf("timer_started_xp must be >= 0 (got %d)", g.TimerStartedXP)
	}
	if g.TimerCompletedXP < 0 {
		return fmt.Errorf("timer_completed_xp must be >= 0 (got %d)", g.TimerCompletedXP)
	}
	if g.DailyGoalXP < 0 {
		return fmt.Errorf("daily_goal_xp must be >= 0 (got %d)", g.DailyGoalXP)
	}
	if g.ChallengeTrackMinutes <= 0 {
		return fmt.Errorf("challenge_track_minutes must be > 0 (got %d)", g.ChallengeTrackMinutes)
	}
	if g.ChallengeCompleteTimers <= 0 {
		return fmt.Errorf("challenge_complete_timers must be > 0 (got %d)", g.ChallengeCompleteTimers)
	}
	if g.LeaderboardSize <= 0 || g.LeaderboardSize > 100 {
		return fmt.Errorf("leaderboard_size must be in 1..100 (got %d)", g.LeaderboardSize)
	}
	if g.LeaderboardCacheTTL < 0 {
		return fmt.Errorf("leaderboard_cache_ttl must be >= 0 (got %v)", g.LeaderboardCacheTTL)
	}
	return nil
}
