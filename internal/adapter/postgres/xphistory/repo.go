// Package xphistory implements the append-only XP ledger using PostgreSQL.
package xphistory

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Repo provides XP history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new XP history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO xp_history (id, user_id, action, xp_earned, description, timer_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Append writes a ledger row. Rows are never updated or deleted.
func (r *Repo) Append(ctx context.Context, h *domain.XPHistory) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		h.ID, h.UserID, string(h.Action), h.XPEarned, h.Description, h.TimerID, h.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "xp_history", h.ID)
	}
	return nil
}

const listSQL = `
SELECT id, user_id, action, xp_earned, description, timer_id, created_at
FROM xp_history
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// ListByUser returns ledger rows newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.XPHistory, error) {
	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("list xp_history: %w", err)
	}

	result := make([]domain.XPHistory, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

type historyRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Action      string     `db:"action"`
	XPEarned    int        `db:"xp_earned"`
	Description *string    `db:"description"`
	TimerID     *uuid.UUID `db:"timer_id"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r historyRow) toDomain() domain.XPHistory {
	return domain.XPHistory{
		ID:          r.ID,
		UserID:      r.UserID,
		Action:      domain.XPAction(r.Action),
		XPEarned:    r.XPEarned,
		Description: r.Description,
		TimerID:     r.TimerID,
		CreatedAt:   r.CreatedAt,
	}
}
