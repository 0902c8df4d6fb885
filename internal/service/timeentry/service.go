// Package timeentry handles manually logged time and entry listings.
package timeentry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const (
	DefaultListLimit     = 50
	MaxListLimit         = 200
	MaxDescriptionLength = 500
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	DeleteManual(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type refResolver interface {
	ResolveRef(ctx context.Context, userID uuid.UUID, projectID *uuid.UUID, taskID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error)
}

// Service provides time entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	refs    refResolver
	clock   clockwork.Clock
}

// NewService creates a new time entry service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	refs refResolver,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "timeentry"),
		entries: entries,
		refs:    refs,
		clock:   clock,
	}
}
