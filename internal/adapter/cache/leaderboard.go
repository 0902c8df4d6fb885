package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const leaderboardKeyPrefix = "questclock:leaderboard:top:"

// Leaderboard caches rendered leaderboard pages keyed by page size.
type Leaderboard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewLeaderboard creates a leaderboard cache whose entries expire after ttl.
func NewLeaderboard(client redis.Cmdable, ttl time.Duration) *Leaderboard {
	return &Leaderboard{client: client, ttl: ttl}
}

type leaderboardEntry struct {
	Rank   int       `json:"rank"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	XP     int64     `json:"xp"`
	Level  int       `json:"level"`
}

// Get returns the cached page. The bool is false on a cache miss.
func (l *Leaderboard) Get(ctx context.Context, limit int) ([]domain.LeaderboardRow, bool, error) {
	raw, err := l.client.Get(ctx, key(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get leaderboard cache: %w", err)
	}

	var entries []leaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("decode leaderboard cache: %w", err)
	}

	rows := make([]domain.LeaderboardRow, len(entries))
	for i, e := range entries {
		rows[i] = domain.LeaderboardRow{Rank: e.Rank, UserID: e.UserID, Name: e.Name, XP: e.XP, Level: e.Level}
	}
	return rows, true, nil
}

// Set stores a page with the configured TTL.
func (l *Leaderboard) Set(ctx context.Context, limit int, rows []domain.LeaderboardRow) error {
	entries := make([]leaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = leaderboardEntry{Rank: r.Rank, UserID: r.UserID, Name: r.Name, XP: r.XP, Level: r.Level}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard cache: %w", err)
	}
	if err := l.client.Set(ctx, key(limit), raw, l.ttl).Err(); err != nil {
		return fmt.Errorf("set leaderboard cache: %w", err)
	}
	return nil
}

func key(limit int) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)
}

// Ping reports whether Redis is reachable.
func (l *Leaderboard) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
