// Package challenge stores daily challenge claims using PostgreSQL.
package challenge

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// Repo provides challenge claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new challenge repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertClaimSQL = `
INSERT INTO challenge_claims (user_id, day, kind, xp_earned, claimed_at)
VALUES ($1, $2, $3, $4, $5)`

// CreateClaim records a claim. A second claim for the same day fails with
// domain.ErrAlreadyExists.
func (r *Repo) CreateClaim(ctx context.Context, c *domain.ChallengeClaim) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertClaimSQL,
		c.UserID, c.Day, string(c.Kind), c.XPEarned, c.ClaimedAt,
	)
	if err != nil {
		return postgres.MapError(err, "challenge_claim", c.UserID)
	}
	return nil
}

const getClaimSQL = `
SELECT user_id, day, kind, xp_earned, claimed_at
FROM challenge_claims
WHERE user_id = $1 AND day = $2`

// GetClaim returns the claim for a day or domain.ErrNotFound.
func (r *Repo) GetClaim(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.ChallengeClaim, error) {
	var row struct {
		UserID    uuid.UUID `db:"user_id"`
		Day       time.Time `db:"day"`
		Kind      string    `db:"kind"`
		XPEarned  int       `db:"xp_earned"`
		ClaimedAt time.Time `db:"claimed_at"`
	}
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getClaimSQL, userID, day); err != nil {
		return nil, postgres.MapError(err, "challenge_claim", userID)
	}

	return &domain.ChallengeClaim{
		UserID:    row.UserID,
		Day:       row.Day,
		Kind:      domain.ChallengeKind(row.Kind),
		XPEarned:  row.XPEarned,
		ClaimedAt: row.ClaimedAt,
	}, nil
}
