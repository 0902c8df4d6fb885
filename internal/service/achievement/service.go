// Package achievement evaluates the static achievement catalog against a
// user's statistics and pays out newly unlocked entries.
package achievement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

type achievementRepo interface {
	Unlock(ctx context.Context, userID uuid.UUID, code string, now time.Time) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error)
}

type statsReader interface {
	Summary(ctx context.Context) (*domain.StatsSummary, error)
}

type xpAwarder interface {
	Award(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service checks and lists achievements.
type Service struct {
	log          *slog.Logger
	achievements achievementRepo
	stats        statsReader
	xp           xpAwarder
	tx           txManager
	clock        clockwork.Clock
}

// NewService creates a new achievement service.
func NewService(
	logger *slog.Logger,
	achievements achievementRepo,
	stats statsReader,
	xp xpAwarder,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:          logger.With("service", "achievement"),
		achievements: achievements,
		stats:        stats,
		xp:           xp,
		tx:           tx,
		clock:        clock,
	}
}

// Status is a catalog entry with the caller's unlock time, if any.
type Status struct {
	Achievement domain.Achievement
	UnlockedAt  *time.Time
}

// Check unlocks every achievement the caller's statistics satisfy and
// returns the ones unlocked by this call. XP is paid only for unlocks this
// call inserted, so repeated or concurrent checks never pay twice.
func (s *Service) Check(ctx context.Context) ([]domain.Achievement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("achievement.Check: %w", err)
	}
	progress := domain.AchievementProgress{
		TimersCompleted: summary.CompletedTimers,
		MinutesTracked:  summary.TotalMinutes,
		StreakDays:      summary.CurrentStreak,
	}

	var unlocked []domain.Achievement
	now := s.clock.Now().UTC()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unlocked = unlocked[:0]
		for _, a := range domain.Achievements {
			if !a.Reached(progress) {
				continue
			}

			inserted, err := s.achievements.Unlock(ctx, userID, a.Code, now)
			if err != nil {
				return fmt.Errorf("unlock %s: %w", a.Code, err)
			}
			if !inserted {
				continue
			}

			desc := "Unlocked " + a.Name
			if _, err := s.xp.Award(ctx, domain.XPAward{
				UserID:      userID,
				Action:      a.XPAction(),
				Amount:      a.XP,
				Description: &desc,
			}); err != nil {
				return fmt.Errorf("award %s: %w", a.Code, err)
			}
			unlocked = append(unlocked, a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("achievement.Check: %w", err)
	}

	for _, a := range unlocked {
		s.log.InfoContext(ctx, "achievement unlocked",
			slog.String("user_id", userID.String()),
			slog.String("code", a.Code),
		)
	}

	return unlocked, nil
}

// List returns the whole catalog with the caller's unlock times.
func (s *Service) List(ctx context.Context) ([]Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	owned, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("achievement.List: %w", err)
	}

	unlockedAt := make(map[string]time.Time, len(owned))
	for _, ua := range owned {
		unlockedAt[ua.Code] = ua.UnlockedAt
	}

	result := make([]Status, len(domain.Achievements))
	for i, a := range domain.Achievements {
		result[i] = Status{Achievement: a}
		if at, ok := unlockedAt[a.Code]; ok {
			result[i].UnlockedAt = &at
		}
	}
	return result, nil
}
