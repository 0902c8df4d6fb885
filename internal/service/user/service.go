// Package user provisions users and manages their profile.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const MaxNameLength = 100

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Ensure(ctx context.Context, id uuid.UUID, name string, now time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name *string, timezone *string, now time.Time) (*domain.User, error)
}

// Service implements user provisioning and profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	clock clockwork.Clock
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		clock: clock,
	}
}
