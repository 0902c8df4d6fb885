package timer

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreateInput holds the parameters for starting a timer.
type CreateInput struct {
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
	Note      *string
	Billable  bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID != nil && *i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "invalid"})
	}
	if i.TaskID != nil && *i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "invalid"})
	}
	if i.Note != nil && utf8.RuneCountInString(*i.Note) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteInput holds the optional overrides for the produced time entry.
type CompleteInput struct {
	Description *string
	// Date in DateLayout. Defaults to today in the user's timezone.
	Date *string
}

// Validate checks all fields and collects all errors.
func (i CompleteInput) Validate() error {
	var errs []domain.FieldError
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Date != nil {
		if _, err := time.Parse(DateLayout, *i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// date returns the parsed override as midnight UTC, or nil.
func (i CompleteInput) date() *time.Time {
	if i.Date == nil {
		return nil
	}
	d, err := time.Parse(DateLayout, *i.Date)
	if err != nil {
		return nil
	}
	return &d
}

// ListInput holds paging and the optional status filter.
type ListInput struct {
	Status *domain.TimerStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFinishedInput lists timers to remove.
type DeleteFinishedInput struct {
	IDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteFinishedInput) Validate() error {
	var errs []domain.FieldError
	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "required"})
	}
	if len(i.IDs) > MaxDeleteBatch {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "too many"})
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "invalid id"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
