// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

const ensureUserSQL = `
INSERT INTO users (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (id) DO NOTHING`

// Ensure creates the user row on first sight. Existing rows are untouched.
func (r *Repo) Ensure(ctx context.Context, id uuid.UUID, name string, now time.Time) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, ensureUserSQL, id, name, now); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

const getUserSQL = `
SELECT id, name, xp, level, timezone, created_at, updated_at
FROM users WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getUserSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

const updateProfileSQL = `
UPDATE users
SET name = COALESCE($2, name), timezone = COALESCE($3, timezone), updated_at = $4
WHERE id = $1
RETURNING id, name, xp, level, timezone, created_at, updated_at`

// UpdateProfile changes name and/or timezone. Nil fields are kept.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, timezone *string, now time.Time) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateProfileSQL, id, name, timezone, now); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// XP operations
// ---------------------------------------------------------------------------

const addXPSQL = `
UPDATE users SET xp = xp + $2, updated_at = now()
WHERE id = $1
RETURNING xp, level`

// AddXP atomically increments the XP counter and returns the new total
// together with the stored level.
func (r *Repo) AddXP(ctx context.Context, id uuid.UUID, delta int) (xp int64, level int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, addXPSQL, id, delta).Scan(&xp, &level)
	if err != nil {
		return 0, 0, postgres.MapError(err, "user", id)
	}
	return xp, level, nil
}

const raiseLevelSQL = `UPDATE users SET level = $2 WHERE id = $1 AND level < $2`

// RaiseLevel stores level if it is higher than the current one.
// It reports whether the row changed.
func (r *Repo) RaiseLevel(ctx context.Context, id uuid.UUID, level int) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, raiseLevelSQL, id, level)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Leaderboard
// ---------------------------------------------------------------------------

// Top returns the highest-XP users. Ties share a rank.
func (r *Repo) Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	sql, args, err := postgres.Builder().
		Select("RANK() OVER (ORDER BY xp DESC) AS rank", "id", "name", "xp", "level").
		From("users").
		OrderBy("xp DESC", "created_at", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []struct {
		Rank  int       `db:"rank"`
		ID    uuid.UUID `db:"id"`
		Name  string    `db:"name"`
		XP    int64     `db:"xp"`
		Level int       `db:"level"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	result := make([]domain.LeaderboardRow, len(rows))
	for i, row := range rows {
		result[i] = domain.LeaderboardRow{Rank: row.Rank, UserID: row.ID, Name: row.Name, XP: row.XP, Level: row.Level}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	XP        int64     `db:"xp"`
	Level     int       `db:"level"`
	Timezone  string    `db:"timezone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Name:      r.Name,
		XP:        r.XP,
		Level:     r.Level,
		Timezone:  r.Timezone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
