package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntryMinutes caps a manually logged entry at one day.
const MaxEntryMinutes = 1440

// TimeEntry is an immutable record of tracked minutes.
// SourceTimerID is set when the entry was materialized from a completed timer.
type TimeEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProjectID     *uuid.UUID
	TaskID        *uuid.UUID
	Date          time.Time
	Minutes       int
	Description   *string
	Billable      bool
	SourceTimerID *uuid.UUID
	CreatedAt     time.Time
}

// FromTimer reports whether the entry was produced by a timer.
func (e *TimeEntry) FromTimer() bool {
	return e.SourceTimerID != nil
}

// NewEntryFromTimer materializes the entry for a completed timer.
// description, when non-nil, replaces the timer note.
func NewEntryFromTimer(timer Timer, date time.Time, description *string, now time.Time) TimeEntry {
	desc := timer.Note
	if description != nil {
		desc = description
	}
	timerID := timer.ID
	return TimeEntry{
		ID:            uuid.New(),
		UserID:        timer.UserID,
		ProjectID:     timer.ProjectID,
		TaskID:        timer.TaskID,
		Date:          date,
		Minutes:       timer.Minutes(),
		Description:   desc,
		Billable:      timer.Billable,
		SourceTimerID: &timerID,
		CreatedAt:     now,
	}
}

// EntryFilter narrows a time entry listing. Zero values mean "any".
type EntryFilter struct {
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
	From      *time.Time
	To        *time.Time
	Billable  *bool
	Limit     int
	Offset    int
}

// DayMinutes is the total tracked on one calendar day.
type DayMinutes struct {
	Day     time.Time
	Minutes int
}
