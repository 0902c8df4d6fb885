package project

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name  string
	Color *string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError
	errs = appendNameErrors(errs, "name", i.Name, MaxNameLength)
	errs = appendColorErrors(errs, i.Color)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
// Nil fields are left unchanged.
type UpdateProjectInput struct {
	ProjectID uuid.UUID
	Name      *string
	Color     *string
	Archived  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil && i.Archived == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, "name", *i.Name, MaxNameLength)
	}
	errs = appendColorErrors(errs, i.Color)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	ProjectID uuid.UUID
	Title     string
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = appendNameErrors(errs, "title", i.Title, MaxTitleLength)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTaskInput holds the parameters for updating a task.
type UpdateTaskInput struct {
	TaskID uuid.UUID
	Title  *string
	Done   *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError
	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.Title == nil && i.Done == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Title != nil {
		errs = appendNameErrors(errs, "title", *i.Title, MaxTitleLength)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, field, value string, limit int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > limit {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendColorErrors(errs []domain.FieldError, color *string) []domain.FieldError {
	if color != nil && *color != "" && !colorRe.MatchString(*color) {
		return append(errs, domain.FieldError{Field: "color", Message: "must be #RRGGBB"})
	}
	return errs
}
