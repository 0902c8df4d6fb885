// Package timer implements the timer lifecycle: create, pause, resume,
// complete and cancel, with the completion side effects (time entry and
// XP award) committed in the same transaction as the state change.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxNoteLength    = 500
	MaxDeleteBatch   = 100
)

type timerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Timer, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Timer, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TimerFilter) ([]domain.Timer, error)
	Create(ctx context.Context, t *domain.Timer) error
	UpdateState(ctx context.Context, t *domain.Timer, expected domain.TimerStatus) error
	DeleteFinished(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
}

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type refResolver interface {
	ResolveRef(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, taskID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error)
}

type xpAwarder interface {
	Award(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	TimerTransition(op string, err error)
}

// Rewards holds the XP granted for timer milestones.
type Rewards struct {
	Started   int
	Completed int
}

// Service manages timers.
type Service struct {
	log     *slog.Logger
	timers  timerRepo
	entries entryRepo
	users   userRepo
	refs    refResolver
	xp      xpAwarder
	tx      txManager
	metrics recorder
	rewards Rewards
	clock   clockwork.Clock
}

// NewService creates a timer service. metrics may be nil.
func NewService(
	logger *slog.Logger,
	timers timerRepo,
	entries entryRepo,
	users userRepo,
	refs refResolver,
	xp xpAwarder,
	tx txManager,
	metrics recorder,
	rewards Rewards,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "timer"),
		timers:  timers,
		entries: entries,
		users:   users,
		refs:    refs,
		xp:      xp,
		tx:      tx,
		metrics: metrics,
		rewards: rewards,
		clock:   clock,
	}
}

// View is a timer together with its live elapsed time.
type View struct {
	Timer     domain.Timer
	ElapsedMs int64
}

func (s *Service) view(t domain.Timer, now time.Time) View {
	return View{Timer: t, ElapsedMs: t.CurrentElapsed(now).Milliseconds()}
}

func (s *Service) record(op string, err error) {
	if s.metrics != nil {
		s.metrics.TimerTransition(op, err)
	}
}

// now truncates to milliseconds so the persisted timestamps and the
// millisecond counters stay consistent after a round trip.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}
