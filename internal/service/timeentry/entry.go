package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// Log records a manual entry for the caller.
func (s *Service) Log(ctx context.Context, input LogInput) (*domain.TimeEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projectID, taskID, err := s.refs.ResolveRef(ctx, userID, input.ProjectID, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("timeentry.Log: %w", err)
	}

	date, _ := time.Parse(DateLayout, input.Date)

	var desc *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			desc = &d
		}
	}

	e := &domain.TimeEntry{
		ID:          uuid.New(),
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      taskID,
		Date:        date,
		Minutes:     input.Minutes,
		Description: desc,
		Billable:    input.Billable,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.entries.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("timeentry.Log: %w", err)
	}

	s.log.InfoContext(ctx, "time logged",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", e.ID.String()),
		slog.Int("minutes", e.Minutes),
	)

	return e, nil
}

// List returns the caller's entries, newest date first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, userID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("timeentry.List: %w", err)
	}
	return entries, nil
}

// Delete removes a manual entry. Entries produced by timers are immutable
// and yield domain.ErrInvalidState.
func (s *Service) Delete(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("timeentry.Delete: %w", err)
	}
	if e.UserID != userID {
		return domain.ErrForbidden
	}
	if e.FromTimer() {
		return fmt.Errorf("timeentry.Delete: entry %s was produced by a timer: %w", entryID, domain.ErrInvalidState)
	}

	if err := s.entries.DeleteManual(ctx, userID, entryID); err != nil {
		return fmt.Errorf("timeentry.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "time entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}
