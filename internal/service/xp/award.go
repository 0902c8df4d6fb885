package xp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Award credits a.Amount XP to a.UserID and appends the ledger row.
//
// Award does not open a transaction: callers run it inside their own
// RunInTx so the counter, the ledger and the triggering write commit
// together. The increment itself is a single UPDATE ... SET xp = xp + n,
// so concurrent awards never lose updates.
//
// When the new total crosses a level boundary the stored level is raised
// and a LEVEL_UP row with 0 XP is appended.
func (s *Service) Award(ctx context.Context, a domain.XPAward) (domain.XPAwardResult, error) {
	if err := validateAward(a); err != nil {
		return domain.XPAwardResult{}, err
	}

	total, level, err := s.users.AddXP(ctx, a.UserID, a.Amount)
	if err != nil {
		return domain.XPAwardResult{}, fmt.Errorf("add xp: %w", err)
	}

	now := s.clock.Now().UTC()
	if err := s.history.Append(ctx, &domain.XPHistory{
		ID:          uuid.New(),
		UserID:      a.UserID,
		Action:      a.Action,
		XPEarned:    a.Amount,
		Description: a.Description,
		TimerID:     a.TimerID,
		CreatedAt:   now,
	}); err != nil {
		return domain.XPAwardResult{}, fmt.Errorf("append xp history: %w", err)
	}

	result := domain.XPAwardResult{Awarded: a.Amount, TotalXP: total, Level: level}

	newLevel := domain.LevelForXP(total)
	if newLevel > level {
		raised, err := s.users.RaiseLevel(ctx, a.UserID, newLevel)
		if err != nil {
			return domain.XPAwardResult{}, fmt.Errorf("raise level: %w", err)
		}
		result.Level = newLevel
		// A concurrent award in another transaction may have raised it first.
		if raised {
			desc := fmt.Sprintf("Reached level %d", newLevel)
			if err := s.history.Append(ctx, &domain.XPHistory{
				ID:          uuid.New(),
				UserID:      a.UserID,
				Action:      domain.XPActionLevelUp,
				XPEarned:    0,
				Description: &desc,
				CreatedAt:   now,
			}); err != nil {
				return domain.XPAwardResult{}, fmt.Errorf("append level up: %w", err)
			}
			result.LeveledUp = true

			s.log.InfoContext(ctx, "level up",
				slog.String("user_id", a.UserID.String()),
				slog.Int("level", newLevel),
			)
		}
	}

	s.log.DebugContext(ctx, "xp awarded",
		slog.String("user_id", a.UserID.String()),
		slog.String("action", a.Action.String()),
		slog.Int("amount", a.Amount),
		slog.Int64("total", total),
	)

	return result, nil
}

func validateAward(a domain.XPAward) error {
	var errs []domain.FieldError
	if a.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !a.Action.IsValid() || a.Action == domain.XPActionLevelUp {
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid value"})
	}
	if a.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
