// Package project implements the Project repository using PostgreSQL.
package project

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

const table = "projects"

var columns = []string{"id", "user_id", "name", "color", "archived", "created_at", "updated_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a project regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project query: %w", err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	p := row.toDomain()
	return &p, nil
}

// GetByIDs returns the projects with the given ids in unspecified order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Project, error) {
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	sql, args, err := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get projects query: %w", err)
	}
	return r.selectProjects(ctx, sql, args)
}

// ListByUser returns the user's projects ordered by name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Project, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("lower(name)", "id")
	if !includeArchived {
		query = query.Where(squirrel.Eq{"archived": false})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects query: %w", err)
	}
	return r.selectProjects(ctx, sql, args)
}

func (r *Repo) selectProjects(ctx context.Context, sql string, args []any) ([]domain.Project, error) {
	var rows []projectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}

	projects := make([]domain.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toDomain()
	}
	return projects, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a project. Duplicate names per user yield domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Project) error {
	sql, args, err := postgres.Builder().Insert(table).Columns(columns...).
		Values(p.ID, p.UserID, p.Name, p.Color, p.Archived, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert project query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "project", p.ID)
	}
	return nil
}

// Update applies the non-nil fields and returns the stored project.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, name, color *string, archived *bool, now time.Time) (*domain.Project, error) {
	query := postgres.Builder().Update(table).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if name != nil {
		query = query.Set("name", *name)
	}
	if color != nil {
		query = query.Set("color", *color)
	}
	if archived != nil {
		query = query.Set("archived", *archived)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project query: %w", err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	p := row.toDomain()
	return &p, nil
}

const deleteSQL = `DELETE FROM projects WHERE id = $1 AND user_id = $2`

// Delete removes a project with its tasks. Timers and entries keep their
// rows with the project reference cleared.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type projectRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Color     *string   `db:"color"`
	Archived  bool      `db:"archived"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Color:     r.Color,
		Archived:  r.Archived,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
