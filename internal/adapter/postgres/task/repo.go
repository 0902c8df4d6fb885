// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const table = "tasks"

var columns = []string{"id", "user_id", "project_id", "title", "done", "created_at", "updated_at"}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a task regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get task query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	t := row.toDomain()
	return &t, nil
}

// GetByIDs returns the tasks with the given ids in unspecified order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error) {
	if len(ids) == 0 {
		return []domain.Task{}, nil
	}

	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tasks query: %w", err)
	}
	return r.selectTasks(ctx, sql, args)
}

// ListByProject returns the tasks of a project, oldest first.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks query: %w", err)
	}
	return r.selectTasks(ctx, sql, args)
}

func (r *Repo) selectTasks(ctx context.Context, sql string, args []any) ([]domain.Task, error) {
	var rows []taskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

// Create inserts a task.
func (r *Repo) Create(ctx context.Context, t *domain.Task) error {
	sql, args, err := postgres.Builder().Insert(table).Columns(columns...).
		Values(t.ID, t.UserID, t.ProjectID, t.Title, t.Done, t.CreatedAt, t.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert task query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	return nil
}

// Update applies the non-nil fields and returns the stored task.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, title *string, done *bool, now time.Time) (*domain.Task, error) {
	query := postgres.Builder().Update(table).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if title != nil {
		query = query.Set("title", *title)
	}
	if done != nil {
		query = query.Set("done", *done)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	t := row.toDomain()
	return &t, nil
}

const deleteSQL = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

// Delete removes a task.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type taskRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ProjectID uuid.UUID `db:"project_id"`
	Title     string    `db:"title"`
	Done      bool      `db:"done"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:        r.ID,
		UserID:    r.UserID,
		ProjectID: r.ProjectID,
		Title:     r.Title,
		Done:      r.Done,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
