package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Ref is an optional project/task pair carried by timers and entries.
type Ref struct {
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
}

// Labels holds display names for a Ref. Fields stay nil when the reference
// is empty or no longer visible to the caller.
type Labels struct {
	ProjectName *string
	TaskTitle   *string
}

// ResolveLabels loads the project name and task title for every ref.
// All loads are queued before any thunk is awaited, so a listing costs at
// most one query per table.
func ResolveLabels(ctx context.Context, l *Loaders, refs []Ref) ([]Labels, error) {
	projects := make([]dataloader.Thunk[*domain.Project], len(refs))
	tasks := make([]dataloader.Thunk[*domain.Task], len(refs))
	for i, ref := range refs {
		if ref.ProjectID != nil {
			projects[i] = l.ProjectByID.Load(ctx, *ref.ProjectID)
		}
		if ref.TaskID != nil {
			tasks[i] = l.TaskByID.Load(ctx, *ref.TaskID)
		}
	}

	out := make([]Labels, len(refs))
	for i := range refs {
		if projects[i] != nil {
			p, err := projects[i]()
			if err != nil {
				return nil, err
			}
			if p != nil {
				out[i].ProjectName = &p.Name
			}
		}
		if tasks[i] != nil {
			t, err := tasks[i]()
			if err != nil {
				return nil, err
			}
			if t != nil {
				out[i].TaskTitle = &t.Title
			}
		}
	}
	return out, nil
}
