// Package timeentry implements the TimeEntry repository using PostgreSQL.
package timeentry

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

const table = "time_entries"

var columns = []string{
	"id", "user_id", "project_id", "task_id", "date", "minutes",
	"description", "billable", "source_timer_id", "created_at",
}

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a time entry. A second entry for the same source timer
// fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.TimeEntry) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.ProjectID, e.TaskID, e.Date, e.Minutes,
			e.Description, e.Billable, e.SourceTimerID, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert time entry query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "time_entry", e.ID)
	}
	return nil
}

const deleteManualSQL = `DELETE FROM time_entries WHERE id = $1 AND user_id = $2 AND source_timer_id IS NULL`

// DeleteManual removes a manually logged entry of the user.
func (r *Repo) DeleteManual(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteManualSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "time_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time entry query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}

	e := row.toDomain()
	return &e, nil
}

// GetBySourceTimer returns the entry materialized from a timer.
func (r *Repo) GetBySourceTimer(ctx context.Context, timerID uuid.UUID) (*domain.TimeEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"source_timer_id": timerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time entry query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "time_entry", timerID)
	}

	e := row.toDomain()
	return &e, nil
}

// List returns the user's entries matching filter, newest date first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	query := applyFilter(postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}), filter).
		OrderBy("date DESC", "created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time entries query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	entries := make([]domain.TimeEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// SumMinutes returns total minutes for entries dated in [from, to).
// Nil bounds are open.
func (r *Repo) SumMinutes(ctx context.Context, userID uuid.UUID, from, to *time.Time) (int, error) {
	query := applyFilter(postgres.Builder().
		Select("COALESCE(SUM(minutes), 0)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}), domain.EntryFilter{From: from, To: to})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum minutes query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum minutes: %w", err)
	}
	return total, nil
}

const minutesByDaySQL = `
SELECT date AS day, SUM(minutes)::int AS minutes
FROM time_entries
WHERE user_id = $1 AND date >= $2 AND minutes > 0
GROUP BY date
ORDER BY date DESC`

// MinutesByDay returns per-day totals since the given day, newest first.
// Days without tracked minutes are omitted.
func (r *Repo) MinutesByDay(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayMinutes, error) {
	var rows []struct {
		Day     time.Time `db:"day"`
		Minutes int       `db:"minutes"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, minutesByDaySQL, userID, since); err != nil {
		return nil, fmt.Errorf("minutes by day: %w", err)
	}

	days := make([]domain.DayMinutes, len(rows))
	for i, row := range rows {
		days[i] = domain.DayMinutes{Day: row.Day, Minutes: row.Minutes}
	}
	return days, nil
}

// applyFilter adds the optional EntryFilter predicates. To is exclusive.
func applyFilter(q squirrel.SelectBuilder, f domain.EntryFilter) squirrel.SelectBuilder {
	if f.ProjectID != nil {
		q = q.Where(squirrel.Eq{"project_id": *f.ProjectID})
	}
	if f.TaskID != nil {
		q = q.Where(squirrel.Eq{"task_id": *f.TaskID})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.Lt{"date": *f.To})
	}
	if f.Billable != nil {
		q = q.Where(squirrel.Eq{"billable": *f.Billable})
	}
	return q
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type entryRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	ProjectID     *uuid.UUID `db:"project_id"`
	TaskID        *uuid.UUID `db:"task_id"`
	Date          time.Time  `db:"date"`
	Minutes       int        `db:"minutes"`
	Description   *string    `db:"description"`
	Billable      bool       `db:"billable"`
	SourceTimerID *uuid.UUID `db:"source_timer_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r entryRow) toDomain() domain.TimeEntry {
	return domain.TimeEntry{
		ID:            r.ID,
		UserID:        r.UserID,
		ProjectID:     r.ProjectID,
		TaskID:        r.TaskID,
		Date:          r.Date,
		Minutes:       r.Minutes,
		Description:   r.Description,
		Billable:      r.Billable,
		SourceTimerID: r.SourceTimerID,
		CreatedAt:     r.CreatedAt,
	}
}
