// Package leaderboard ranks users by XP.
package leaderboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// MaxLimit caps the page size.
const MaxLimit = 100

type userRepo interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
}

type rowCache interface {
	Get(ctx context.Context, limit int) ([]domain.LeaderboardRow, bool, error)
	Set(ctx context.Context, limit int, rows []domain.LeaderboardRow) error
}

// Service serves the leaderboard through an optional read-through cache.
type Service struct {
	log          *slog.Logger
	users        userRepo
	cache        rowCache
	defaultLimit int
}

// NewService creates a leaderboard service. cache may be nil, in which
// case every call reads the database.
func NewService(logger *slog.Logger, users userRepo, cache rowCache, defaultLimit int) *Service {
	return &Service{
		log:          logger.With("service", "leaderboard"),
		users:        users,
		cache:        cache,
		defaultLimit: defaultLimit,
	}
}

// Top returns the first limit users by XP. A zero limit uses the
// configured size. Cache failures are logged and fall back to the
// database.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxLimit))
	}

	if s.cache != nil {
		rows, hit, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.log.WarnContext(ctx, "leaderboard cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return rows, nil
		}
	}

	rows, err := s.users.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard.Top: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, rows); err != nil {
			s.log.WarnContext(ctx, "leaderboard cache write failed", slog.String("error", err.Error()))
		}
	}

	return rows, nil
}
