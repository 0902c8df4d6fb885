package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks and time entries for a user.
type Project struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     *string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a unit of work inside a project.
type Task struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Title     string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
