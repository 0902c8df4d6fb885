package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const msPerMinute = 60_000

// Timer is a single tracked work session owned by one user.
//
// ElapsedMs holds the sum of all closed running intervals. While the timer is
// RUNNING the open interval starts at StartedAt and is not persisted until the
// next transition.
type Timer struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProjectID     *uuid.UUID
	TaskID        *uuid.UUID
	Status        TimerStatus
	StartedAt     time.Time
	PausedAt      *time.Time
	ElapsedMs     int64
	TotalPausedMs int64
	CompletedAt   *time.Time
	Note          *string
	Billable      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTimer returns a RUNNING timer started at now.
func NewTimer(userID uuid.UUID, projectID, taskID *uuid.UUID, note *string, billable bool, now time.Time) Timer {
	return Timer{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: projectID,
		TaskID:    taskID,
		Status:    TimerStatusRunning,
		StartedAt: now,
		Note:      note,
		Billable:  billable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether userID owns the timer.
func (t *Timer) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// CurrentElapsed returns the active duration of the timer as of now.
// It never mutates the timer.
func (t *Timer) CurrentElapsed(now time.Time) time.Duration {
	ms := t.ElapsedMs
	if t.Status == TimerStatusRunning {
		ms += intervalMs(t.StartedAt, now)
	}
	return time.Duration(ms) * time.Millisecond
}

// Pause closes the running interval.
func (t *Timer) Pause(now time.Time) error {
	if t.Status != TimerStatusRunning {
		return transitionError("pause", t.Status)
	}
	t.ElapsedMs += intervalMs(t.StartedAt, now)
	t.PausedAt = &now
	t.Status = TimerStatusPaused
	t.UpdatedAt = now
	return nil
}

// Resume opens a new running interval and books the paused gap.
func (t *Timer) Resume(now time.Time) error {
	if t.Status != TimerStatusPaused {
		return transitionError("resume", t.Status)
	}
	if t.PausedAt != nil {
		t.TotalPausedMs += intervalMs(*t.PausedAt, now)
	}
	t.StartedAt = now
	t.PausedAt = nil
	t.Status = TimerStatusRunning
	t.UpdatedAt = now
	return nil
}

// Complete freezes elapsed time and moves the timer to COMPLETED.
func (t *Timer) Complete(now time.Time) error {
	if t.Status.IsTerminal() {
		return transitionError("complete", t.Status)
	}
	t.finish(TimerStatusCompleted, now)
	return nil
}

// Cancel freezes elapsed time and moves the timer to CANCELED.
func (t *Timer) Cancel(now time.Time) error {
	if t.Status.IsTerminal() {
		return transitionError("cancel", t.Status)
	}
	t.finish(TimerStatusCanceled, now)
	return nil
}

func (t *Timer) finish(status TimerStatus, now time.Time) {
	if t.Status == TimerStatusRunning {
		t.ElapsedMs += intervalMs(t.StartedAt, now)
	}
	t.PausedAt = nil
	t.Status = status
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Minutes returns the billable minutes for the frozen elapsed time.
func (t *Timer) Minutes() int {
	return MinutesFromMs(t.ElapsedMs)
}

// MinutesFromMs rounds a millisecond duration up to whole minutes.
func MinutesFromMs(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int((ms + msPerMinute - 1) / msPerMinute)
}

// intervalMs is clamped at zero so a clock that steps backwards never
// shrinks elapsed time.
func intervalMs(from, to time.Time) int64 {
	d := to.Sub(from).Milliseconds()
	if d < 0 {
		return 0
	}
	return d
}

func transitionError(op string, status TimerStatus) error {
	return fmt.Errorf("cannot %s timer in status %s: %w", op, status, ErrInvalidState)
}

// TimerFilter narrows a timer listing.
type TimerFilter struct {
	Status *TimerStatus
	Limit  int
	Offset int
}
