package timer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// Get returns one of the caller's timers with its live elapsed time.
func (s *Service) Get(ctx context.Context, timerID uuid.UUID) (*View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.timers.GetByID(ctx, timerID)
	if err != nil {
		return nil, fmt.Errorf("timer.Get: %w", err)
	}
	if !t.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	v := s.view(*t, s.now())
	return &v, nil
}

// List returns the caller's timers, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	timers, err := s.timers.List(ctx, userID, domain.TimerFilter{
		Status: input.Status,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("timer.List: %w", err)
	}

	now := s.now()
	views := make([]View, len(timers))
	for i, t := range timers {
		views[i] = s.view(t, now)
	}
	return views, nil
}

// DeleteFinished removes the caller's COMPLETED and CANCELED timers among
// input.IDs. Ids of active or foreign timers are skipped.
func (s *Service) DeleteFinished(ctx context.Context, input DeleteFinishedInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	n, err := s.timers.DeleteFinished(ctx, userID, input.IDs)
	if err != nil {
		return 0, fmt.Errorf("timer.DeleteFinished: %w", err)
	}

	s.log.InfoContext(ctx, "finished timers deleted",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(input.IDs)),
		slog.Int("deleted", n),
	)
	return n, nil
}
