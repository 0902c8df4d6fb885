// Package project manages projects and their tasks and checks that
// timers and entries only reference work the caller owns.
package project

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const (
	MaxNameLength  = 100
	MaxTitleLength = 200
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, name *string, color *string, archived *bool, now time.Time) (*domain.Project, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, title *string, done *bool, now time.Time) (*domain.Task, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

// Service provides project and task management.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	tasks    taskRepo
	clock    clockwork.Clock
}

// NewService creates a new project service.
func NewService(
	logger *slog.Logger,
	projects projectRepo,
	tasks taskRepo,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		tasks:    tasks,
		clock:    clock,
	}
}

// ownedProject loads a project and checks the owner.
func (s *Service) ownedProject(ctx context.Context, userID, id uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// ownedTask loads a task and checks the owner.
func (s *Service) ownedTask(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
