package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// ResolveRef checks the optional project and task a timer or entry will
// point at and returns the ids to store.
//
// Either id must exist (ErrNotFound) and belong to userID (ErrForbidden).
// When both are given the task must belong to the project; when only the
// task is given its project is derived from it. Archived projects cannot
// receive new work.
func (s *Service) ResolveRef(ctx context.Context, userID uuid.UUID, projectID, taskID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	if taskID != nil {
		t, err := s.ownedTask(ctx, userID, *taskID)
		if err != nil {
			return nil, nil, fmt.Errorf("task %s: %w", *taskID, err)
		}
		if projectID != nil && *projectID != t.ProjectID {
			return nil, nil, domain.NewValidationError("task_id", "task does not belong to project")
		}
		pid := t.ProjectID
		projectID = &pid
	}

	if projectID == nil {
		return nil, taskID, nil
	}

	p, err := s.ownedProject(ctx, userID, *projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("project %s: %w", *projectID, err)
	}
	if p.Archived {
		return nil, nil, domain.NewValidationError("project_id", "project is archived")
	}

	return projectID, taskID, nil
}
