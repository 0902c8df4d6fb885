package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with zero XP in the UTC timezone.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + uniqueSuffix(),
		Level:     1,
		Timezone:  "UTC",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, xp, level, timezone, created_at, updated_at)
		 VALUES ($1, $2, 0, 1, $3, $4, $5)`,
		user.ID, user.Name, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProject creates a project owned by userID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Project {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Project " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, user_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.Name, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedTask creates a task in the given project.
func SeedTask(t *testing.T, pool *pgxpool.Pool, userID, projectID uuid.UUID) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		Title:     "Task " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, user_id, project_id, title, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.ProjectID, task.Title, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// UserXP returns the stored XP counter of a user.
func UserXP(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int64 {
	t.Helper()

	var xp int64
	if err := pool.QueryRow(context.Background(), `SELECT xp FROM users WHERE id = $1`, userID).Scan(&xp); err != nil {
		t.Fatalf("testhelper: UserXP: %v", err)
	}
	return xp
}

// CountRows returns SELECT count(*) FROM table WHERE where, for assertions.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), `SELECT count(*) FROM `+table+` WHERE `+where, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows(%s): %v", table, err)
	}
	return n
}
