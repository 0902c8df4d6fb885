// Package achievement stores unlocked achievements using PostgreSQL.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Repo provides achievement unlock persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new achievement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Unlock records the achievement for the user. It reports false when the
// achievement was already unlocked, including by a concurrent caller.
func (r *Repo) Unlock(ctx context.Context, userID uuid.UUID, code string, now time.Time) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert("user_achievements").
		Columns("user_id", "code", "unlocked_at").
		Values(userID, code, now).
		Suffix("ON CONFLICT (user_id, code) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build unlock query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "user_achievement", userID)
	}
	return tag.RowsAffected() == 1, nil
}

const listSQL = `
SELECT user_id, code, unlocked_at
FROM user_achievements
WHERE user_id = $1
ORDER BY unlocked_at, code`

// ListByUser returns the user's unlocked achievements, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserAchievement, error) {
	var rows []struct {
		UserID     uuid.UUID `db:"user_id"`
		Code       string    `db:"code"`
		UnlockedAt time.Time `db:"unlocked_at"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID); err != nil {
		return nil, fmt.Errorf("list user achievements: %w", err)
	}

	result := make([]domain.UserAchievement, len(rows))
	for i, row := range rows {
		result[i] = domain.UserAchievement{UserID: row.UserID, Code: row.Code, UnlockedAt: row.UnlockedAt}
	}
	return result, nil
}
