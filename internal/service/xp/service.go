// Package xp credits experience points and keeps the XP ledger.
package xp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type userRepo interface {
	AddXP(ctx context.Context, id uuid.UUID, delta int) (int64, int, error)
	RaiseLevel(ctx context.Context, id uuid.UUID, level int) (bool, error)
}

type historyRepo interface {
	Append(ctx context.Context, h *domain.XPHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.XPHistory, error)
}

// Service implements XP awarding and ledger reads.
type Service struct {
	log     *slog.Logger
	users   userRepo
	history historyRepo
	clock   clockwork.Clock
}

// NewService creates a new XP service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	history historyRepo,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "xp"),
		users:   users,
		history: history,
		clock:   clock,
	}
}
