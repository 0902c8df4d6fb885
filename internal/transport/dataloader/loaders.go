package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

func newProjectBatchFn(repo projectRepo) dataloader.BatchFunc[uuid.UUID, *domain.Project] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Project] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Project](len(keys), domain.ErrUnauthorized)
		}

		projects, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Project](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Project, len(projects))
		for i := range projects {
			if projects[i].UserID == userID {
				byID[projects[i].ID] = &projects[i]
			}
		}

		return mapResults(keys, byID, nilValue[*domain.Project])
	}
}

func newTaskBatchFn(repo taskRepo) dataloader.BatchFunc[uuid.UUID, *domain.Task] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Task] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[*domain.Task](len(keys), domain.ErrUnauthorized)
		}

		tasks, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Task](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Task, len(tasks))
		for i := range tasks {
			if tasks[i].UserID == userID {
				byID[tasks[i].ID] = &tasks[i]
			}
		}

		return mapResults(keys, byID, nilValue[*domain.Task])
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
