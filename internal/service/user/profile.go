package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// Profile is a user together with their level progress.
type Profile struct {
	User     domain.User
	Progress domain.LevelProgress
}

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return &Profile{User: *user, Progress: domain.ProgressForXP(user.XP)}, nil
}

// UpdateProfile changes the caller's display name and/or timezone.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateProfile(ctx, userID, input.trimmedName(), input.Timezone, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return &Profile{User: *user, Progress: domain.ProgressForXP(user.XP)}, nil
}
