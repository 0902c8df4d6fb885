package timeentry

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// LogInput holds the parameters for a manually logged entry.
type LogInput struct {
	ProjectID   *uuid.UUID
	TaskID      *uuid.UUID
	Date        string
	Minutes     int
	Description *string
	Billable    bool
}

// Validate checks all fields and collects all errors.
func (i LogInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID != nil && *i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "invalid"})
	}
	if i.TaskID != nil && *i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "invalid"})
	}
	if _, err := time.Parse(DateLayout, i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if i.Minutes < 1 || i.Minutes > domain.MaxEntryMinutes {
		errs = append(errs, domain.FieldError{Field: "minutes", Message: "must be between 1 and 1440"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows an entry listing. From and To are inclusive dates.
type ListInput struct {
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
	From      *string
	To        *string
	Billable  *bool
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	from, fromOK := parseOptionalDate(i.From)
	if !fromOK {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	to, toOK := parseOptionalDate(i.To)
	if !toOK {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if from != nil && to != nil && to.Before(*from) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
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

func (i ListInput) filter() domain.EntryFilter {
	from, _ := parseOptionalDate(i.From)
	to, _ := parseOptionalDate(i.To)
	if to != nil {
		// the store bound is exclusive
		next := to.AddDate(0, 0, 1)
		to = &next
	}
	limit := i.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	return domain.EntryFilter{
		ProjectID: i.ProjectID,
		TaskID:    i.TaskID,
		From:      from,
		To:        to,
		Billable:  i.Billable,
		Limit:     limit,
		Offset:    i.Offset,
	}
}

func parseOptionalDate(s *string) (*time.Time, bool) {
	if s == nil {
		return nil, true
	}
	d, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, false
	}
	return &d, true
}
