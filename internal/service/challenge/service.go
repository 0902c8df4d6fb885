// Package challenge serves the daily challenge and its one-per-day reward.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

type claimRepo interface {
	CreateClaim(ctx context.Context, c *domain.ChallengeClaim) error
	GetClaim(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.ChallengeClaim, error)
}

type entryRepo interface {
	SumMinutes(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error)
}

type timerRepo interface {
	CountCompleted(ctx context.Context, userID uuid.UUID, from *time.Time, to *time.Time) (int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type xpAwarder interface {
	Award(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings configures targets and the reward.
type Settings struct {
	Targets domain.ChallengeTargets
	XP      int
}

// Service provides the daily challenge.
type Service struct {
	log      *slog.Logger
	claims   claimRepo
	entries  entryRepo
	timers   timerRepo
	users    userRepo
	xp       xpAwarder
	tx       txManager
	settings Settings
	clock    clockwork.Clock
}

// NewService creates a new challenge service.
func NewService(
	logger *slog.Logger,
	claims claimRepo,
	entries entryRepo,
	timers timerRepo,
	users userRepo,
	xp xpAwarder,
	tx txManager,
	settings Settings,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:      logger.With("service", "challenge"),
		claims:   claims,
		entries:  entries,
		timers:   timers,
		users:    users,
		xp:       xp,
		tx:       tx,
		settings: settings,
		clock:    clock,
	}
}

// Status is the caller's standing on today's challenge.
type Status struct {
	Challenge domain.DailyChallenge
	Progress  int
	Completed bool
	Claimed   bool
	XP        int
}

// Today returns today's challenge in the caller's timezone.
func (s *Service) Today(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.status(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("challenge.Today: %w", err)
	}

	_, err = s.claims.GetClaim(ctx, userID, st.Challenge.Day)
	switch {
	case err == nil:
		st.Claimed = true
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("challenge.Today: get claim: %w", err)
	}

	return st, nil
}

// Claim pays the reward for today's challenge. It fails with
// domain.ErrInvalidState while the target is not reached or when the day
// was already claimed.
func (s *Service) Claim(ctx context.Context) (*domain.ChallengeClaim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.status(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("challenge.Claim: %w", err)
	}
	if !st.Completed {
		return nil, fmt.Errorf("challenge.Claim: progress %d of %d: %w",
			st.Progress, st.Challenge.Target, domain.ErrInvalidState)
	}

	claim := &domain.ChallengeClaim{
		UserID:    userID,
		Day:       st.Challenge.Day,
		Kind:      st.Challenge.Kind,
		XPEarned:  s.settings.XP,
		ClaimedAt: s.clock.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.claims.CreateClaim(ctx, claim); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("already claimed for %s: %w", claim.Day.Format(time.DateOnly), domain.ErrInvalidState)
			}
			return fmt.Errorf("create claim: %w", err)
		}

		desc := fmt.Sprintf("Daily challenge %s", claim.Kind)
		if _, err := s.xp.Award(ctx, domain.XPAward{
			UserID:      userID,
			Action:      domain.XPActionDailyGoal,
			Amount:      claim.XPEarned,
			Description: &desc,
		}); err != nil {
			return fmt.Errorf("award daily goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("challenge.Claim: %w", err)
	}

	s.log.InfoContext(ctx, "daily challenge claimed",
		slog.String("user_id", userID.String()),
		slog.String("kind", string(claim.Kind)),
	)

	return claim, nil
}

// status computes today's challenge and progress without the claim flag.
func (s *Service) status(ctx context.Context, userID uuid.UUID) (*Status, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	tz := domain.ParseTimezone(u.Timezone)
	today := domain.LocalDate(s.clock.Now(), tz)
	ch := domain.ChallengeForDay(today, s.settings.Targets)

	var progress int
	switch ch.Kind {
	case domain.ChallengeKindTrackMinutes:
		tomorrow := today.AddDate(0, 0, 1)
		progress, err = s.entries.SumMinutes(ctx, userID, &today, &tomorrow)
	case domain.ChallengeKindCompleteTimers:
		start, end := domain.DayBounds(today, tz)
		progress, err = s.timers.CountCompleted(ctx, userID, &start, &end)
	}
	if err != nil {
		return nil, fmt.Errorf("challenge progress: %w", err)
	}

	return &Status{
		Challenge: ch,
		Progress:  progress,
		Completed: progress >= ch.Target,
		XP:        s.settings.XP,
	}, nil
}
