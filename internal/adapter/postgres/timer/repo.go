// Package timer implements the Timer repository using PostgreSQL.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

const table = "timers"

var columns = []string{
	"id", "user_id", "project_id", "task_id", "status", "started_at", "paused_at",
	"elapsed_ms", "total_paused_ms", "completed_at", "note", "billable", "created_at", "updated_at",
}

// Repo provides timer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new timer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a timer by primary key regardless of owner, so callers can
// tell a missing timer from a foreign one.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Timer, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Concurrent transitions on the same timer queue behind it.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Timer, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Timer, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get timer query: %w", err)
	}

	var row timerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "timer", id)
	}

	t := row.toDomain()
	return &t, nil
}

// List returns a user's timers, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TimerFilter) ([]domain.Timer, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list timers query: %w", err)
	}

	var rows []timerRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}

	timers := make([]domain.Timer, len(rows))
	for i, row := range rows {
		timers[i] = row.toDomain()
	}
	return timers, nil
}

// CountCompleted returns how many timers the user completed in [from, to).
// Nil bounds are open.
func (r *Repo) CountCompleted(ctx context.Context, userID uuid.UUID, from, to *time.Time) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.TimerStatusCompleted)})
	if from != nil {
		query = query.Where(squirrel.GtOrEq{"completed_at": *from})
	}
	if to != nil {
		query = query.Where(squirrel.Lt{"completed_at": *to})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count timers query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completed timers: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new timer.
func (r *Repo) Create(ctx context.Context, t *domain.Timer) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.UserID, t.ProjectID, t.TaskID, string(t.Status), t.StartedAt, t.PausedAt,
			t.ElapsedMs, t.TotalPausedMs, t.CompletedAt, t.Note, t.Billable, t.CreatedAt, t.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert timer query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "timer", t.ID)
	}
	return nil
}

const updateStateSQL = `
UPDATE timers
SET status = $4, started_at = $5, paused_at = $6, elapsed_ms = $7,
    total_paused_ms = $8, completed_at = $9, updated_at = $10
WHERE id = $1 AND user_id = $2 AND status = $3`

// UpdateState persists a transition of t. The write only applies while the
// stored status still equals expected and the owner matches; otherwise
// domain.ErrInvalidState is returned and nothing changes.
func (r *Repo) UpdateState(ctx context.Context, t *domain.Timer, expected domain.TimerStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateStateSQL,
		t.ID, t.UserID, string(expected),
		string(t.Status), t.StartedAt, t.PausedAt, t.ElapsedMs,
		t.TotalPausedMs, t.CompletedAt, t.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "timer", t.ID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("timer %s: status is no longer %s: %w", t.ID, expected, domain.ErrInvalidState)
	}
	return nil
}

// DeleteFinished removes the user's timers among ids that are COMPLETED or
// CANCELED. Other ids are ignored. Returns the number of deleted timers.
func (r *Repo) DeleteFinished(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{
			"user_id": userID,
			"id":      ids,
			"status":  []string{string(domain.TimerStatusCompleted), string(domain.TimerStatusCanceled)},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete timers query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete finished timers: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

const purgeFinishedSQL = `
DELETE FROM timers
WHERE status IN ('COMPLETED', 'CANCELED') AND completed_at < $1`

// PurgeFinishedBefore deletes terminal timers of all users that finished
// before threshold. Derived time entries keep their data; only the
// source_timer_id back-reference becomes dangling.
func (r *Repo) PurgeFinishedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, purgeFinishedSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge finished timers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type timerRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	ProjectID     *uuid.UUID `db:"project_id"`
	TaskID        *uuid.UUID `db:"task_id"`
	Status        string     `db:"status"`
	StartedAt     time.Time  `db:"started_at"`
	PausedAt      *time.Time `db:"paused_at"`
	ElapsedMs     int64      `db:"elapsed_ms"`
	TotalPausedMs int64      `db:"total_paused_ms"`
	CompletedAt   *time.Time `db:"completed_at"`
	Note          *string    `db:"note"`
	Billable      bool       `db:"billable"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r timerRow) toDomain() domain.Timer {
	return domain.Timer{
		ID:            r.ID,
		UserID:        r.UserID,
		ProjectID:     r.ProjectID,
		TaskID:        r.TaskID,
		Status:        domain.TimerStatus(r.Status),
		StartedAt:     r.StartedAt,
		PausedAt:      r.PausedAt,
		ElapsedMs:     r.ElapsedMs,
		TotalPausedMs: r.TotalPausedMs,
		CompletedAt:   r.CompletedAt,
		Note:          r.Note,
		Billable:      r.Billable,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
