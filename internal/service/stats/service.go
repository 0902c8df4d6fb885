// Package stats aggregates a user's tracking activity.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// StreakWindowDays bounds how far back the streak is looked up.
const StreakWindowDays = 400

type entryRepo interface {
	SumMinutes(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error)
	MinutesByDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayMinutes, error)
}

type timerRepo interface {
	CountCompleted(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service computes statistics.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	timers  timerRepo
	users   userRepo
	clock   clockwork.Clock
}

// NewService creates a new stats service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	timers timerRepo,
	users userRepo,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "stats"),
		entries: entries,
		timers:  timers,
		users:   users,
		clock:   clock,
	}
}

// Summary returns the caller's totals. Dates are evaluated in the user's
// timezone; the independent aggregates run concurrently.
func (s *Service) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.Summary: get user: %w", err)
	}

	today := domain.LocalDate(s.clock.Now(), domain.ParseTimezone(u.Timezone))
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := domain.WeekStart(today)

	summary := &domain.StatsSummary{XP: u.XP, Level: u.Level}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.entries.SumMinutes(gctx, userID, nil, nil)
		if err != nil {
			return fmt.Errorf("total minutes: %w", err)
		}
		summary.TotalMinutes = n
		return nil
	})

	g.Go(func() error {
		n, err := s.entries.SumMinutes(gctx, userID, &today, &tomorrow)
		if err != nil {
			return fmt.Errorf("today minutes: %w", err)
		}
		summary.TodayMinutes = n
		return nil
	})

	g.Go(func() error {
		n, err := s.entries.SumMinutes(gctx, userID, &weekStart, &tomorrow)
		if err != nil {
			return fmt.Errorf("week minutes: %w", err)
		}
		summary.WeekMinutes = n
		return nil
	})

	g.Go(func() error {
		n, err := s.timers.CountCompleted(gctx, userID, nil, nil)
		if err != nil {
			return fmt.Errorf("completed timers: %w", err)
		}
		summary.CompletedTimers = n
		return nil
	})

	g.Go(func() error {
		days, err := s.entries.MinutesByDay(gctx, userID, today.AddDate(0, 0, -StreakWindowDays))
		if err != nil {
			return fmt.Errorf("minutes by day: %w", err)
		}
		summary.CurrentStreak = domain.CurrentStreak(days, today)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats.Summary: %w", err)
	}

	s.log.DebugContext(ctx, "stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("total_minutes", summary.TotalMinutes),
		slog.Int("streak", summary.CurrentStreak),
	)

	return summary, nil
}
