package xp

import (
	"context"
	"fmt"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// HistoryInput pages through the caller's XP ledger, newest first.
type HistoryInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxHistoryLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// History returns the caller's XP ledger.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.XPHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	items, err := s.history.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("xp.History: %w", err)
	}
	return items, nil
}
