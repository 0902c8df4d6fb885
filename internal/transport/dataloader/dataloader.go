// Package dataloader provides per-request DataLoaders that batch the
// project and task lookups needed to label timer and entry listings.
// Loaders call repositories directly, bypassing the service layer. Rows not
// owned by the caller are dropped, so a foreign ID resolves to nil.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type projectRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Project, error)
}

type taskRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Project projectRepo
	Task    taskRepo
}

// Loaders contains the per-request loaders. Created per-request via NewLoaders.
type Loaders struct {
	ProjectByID *dataloader.Loader[uuid.UUID, *domain.Project]
	TaskByID    *dataloader.Loader[uuid.UUID, *domain.Task]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ProjectByID: newLoader(newProjectBatchFn(repos.Project)),
		TaskByID:    newLoader(newTaskBatchFn(repos.Task)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
