package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

// CreateTask adds a task to one of the caller's projects.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ownedProject(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if p.Archived {
		return nil, domain.NewValidationError("project_id", "project is archived")
	}

	now := s.clock.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: p.ID,
		Title:     strings.TrimSpace(input.Title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// ListTasks returns the tasks of one of the caller's projects.
func (s *Service) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask renames a task or toggles its done flag.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedTask(ctx, userID, input.TaskID); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	var title *string
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		title = &trimmed
	}

	t, err := s.tasks.Update(ctx, userID, input.TaskID, title, input.Done, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
