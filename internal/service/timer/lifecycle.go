package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// Create starts a RUNNING timer for the caller and awards the start XP.
func (s *Service) Create(ctx context.Context, input CreateInput) (_ *domain.Timer, err error) {
	defer func() { s.record("create", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projectID, taskID, err := s.refs.ResolveRef(ctx, userID, input.ProjectID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("timer.Create: %w", err)
	}

	t := domain.NewTimer(userID, projectID, taskID, input.Note, input.Billable, s.now())

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.timers.Create(ctx, &t); err != nil {
			return fmt.Errorf("create timer: %w", err)
		}
		timerID := t.ID
		if _, err := s.xp.Award(ctx, domain.XPAward{
			UserID:  userID,
			Action:  domain.XPActionTimerStarted,
			Amount:  s.rewards.Started,
			TimerID: &timerID,
		}); err != nil {
			return fmt.Errorf("award start xp: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("timer.Create: %w", err)
	}

	s.log.InfoContext(ctx, "timer started",
		slog.String("user_id", userID.String()),
		slog.String("timer_id", t.ID.String()),
	)

	return &t, nil
}

// Pause closes the running interval of a RUNNING timer.
func (s *Service) Pause(ctx context.Context, timerID uuid.UUID) (_ *domain.Timer, err error) {
	defer func() { s.record("pause", err) }()

	t, err := s.transition(ctx, timerID, (*domain.Timer).Pause, nil)
	if err != nil {
		return nil, fmt.Errorf("timer.Pause: %w", err)
	}
	return t, nil
}

// Resume opens a new running interval of a PAUSED timer.
func (s *Service) Resume(ctx context.Context, timerID uuid.UUID) (_ *domain.Timer, err error) {
	defer func() { s.record("resume", err) }()

	t, err := s.transition(ctx, timerID, (*domain.Timer).Resume, nil)
	if err != nil {
		return nil, fmt.Errorf("timer.Resume: %w", err)
	}
	return t, nil
}

// Cancel stops a timer without producing an entry or XP.
func (s *Service) Cancel(ctx context.Context, timerID uuid.UUID) (_ *domain.Timer, err error) {
	defer func() { s.record("cancel", err) }()

	t, err := s.transition(ctx, timerID, (*domain.Timer).Cancel, nil)
	if err != nil {
		return nil, fmt.Errorf("timer.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "timer canceled",
		slog.String("user_id", t.UserID.String()),
		slog.String("timer_id", t.ID.String()),
		slog.Int64("elapsed_ms", t.ElapsedMs),
	)
	return t, nil
}

// CompleteResult is the outcome of a successful completion.
type CompleteResult struct {
	Timer    domain.Timer
	Entry    domain.TimeEntry
	XPGained int
	Award    domain.XPAwardResult
}

// Complete stops a RUNNING or PAUSED timer, materializes its time entry and
// awards the completion XP. All writes commit together; of several
// concurrent completes of one timer exactly one succeeds and the others get
// domain.ErrInvalidState.
func (s *Service) Complete(ctx context.Context, timerID uuid.UUID, input CompleteInput) (_ *CompleteResult, err error) {
	defer func() { s.record("complete", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res CompleteResult
	t, err := s.transition(ctx, timerID, (*domain.Timer).Complete, func(ctx context.Context, t *domain.Timer, now time.Time) error {
		date, err := s.entryDate(ctx, t.UserID, input, now)
		if err != nil {
			return err
		}

		entry := domain.NewEntryFromTimer(*t, date, input.Description, now)
		if err := s.entries.Create(ctx, &entry); err != nil {
			return fmt.Errorf("create time entry: %w", err)
		}

		timerID := t.ID
		award, err := s.xp.Award(ctx, domain.XPAward{
			UserID:  t.UserID,
			Action:  domain.XPActionTimerCompleted,
			Amount:  s.rewards.Completed,
			TimerID: &timerID,
		})
		if err != nil {
			return fmt.Errorf("award completion xp: %w", err)
		}

		res.Entry = entry
		res.XPGained = award.Awarded
		res.Award = award
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("timer.Complete: %w", err)
	}
	res.Timer = *t

	s.log.InfoContext(ctx, "timer completed",
		slog.String("user_id", t.UserID.String()),
		slog.String("timer_id", t.ID.String()),
		slog.Int64("elapsed_ms", t.ElapsedMs),
		slog.Int("minutes", res.Entry.Minutes),
		slog.Bool("leveled_up", res.Award.LeveledUp),
	)

	return &res, nil
}

// entryDate is the override date, or today in the user's timezone.
func (s *Service) entryDate(ctx context.Context, userID uuid.UUID, input CompleteInput, now time.Time) (time.Time, error) {
	if d := input.date(); d != nil {
		return *d, nil
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("get user: %w", err)
	}
	return domain.LocalDate(now, domain.ParseTimezone(u.Timezone)), nil
}

// transition runs one state change inside a transaction: lock the row,
// check the owner, apply the domain transition, persist it conditionally on
// the status read under the lock, then run after with the updated timer.
func (s *Service) transition(
	ctx context.Context,
	timerID uuid.UUID,
	apply func(t *domain.Timer, now time.Time) error,
	after func(ctx context.Context, t *domain.Timer, now time.Time) error,
) (*domain.Timer, error) {
	if timerID == uuid.Nil {
		return nil, domain.NewValidationError("timer_id", "required")
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var result *domain.Timer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		t, err := s.timers.GetByIDForUpdate(ctx, timerID)
		if err != nil {
			return err
		}
		if !t.IsOwnedBy(userID) {
			return domain.ErrForbidden
		}

		now := s.now()
		expected := t.Status
		if err := apply(t, now); err != nil {
			return err
		}
		if err := s.timers.UpdateState(ctx, t, expected); err != nil {
			return err
		}

		if after != nil {
			if err := after(ctx, t, now); err != nil {
				return err
			}
		}
		result = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
