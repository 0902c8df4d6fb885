package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/timer"
	"github.com/heartmarshall/questclock-backend/internal/transport/dataloader"
)

type timerService interface {
	Create(ctx context.Context, input timer.CreateInput) (*domain.Timer, error)
	Get(ctx context.Context, timerID uuid.UUID) (*timer.View, error)
	List(ctx context.Context, input timer.ListInput) ([]timer.View, error)
	Pause(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	Resume(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	Cancel(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error)
	Complete(ctx context.Context, timerID uuid.UUID, input timer.CompleteInput) (*timer.CompleteResult, error)
	DeleteFinished(ctx context.Context, input timer.DeleteFinishedInput) (int, error)
}

// TimerHandler serves the timer lifecycle endpoints.
type TimerHandler struct {
	svc   timerService
	clock clockwork.Clock
	log   *slog.Logger
}

// NewTimerHandler creates a TimerHandler.
func NewTimerHandler(svc timerService, clock clockwork.Clock, logger *slog.Logger) *TimerHandler {
	return &TimerHandler{svc: svc, clock: clock, log: logger.With("handler", "timer")}
}

type createTimerRequest struct {
	ProjectID *uuid.UUID `json:"projectId"`
	TaskID    *uuid.UUID `json:"taskId"`
	Note      *string    `json:"note" validate:"omitempty,max=500"`
	Billable  bool       `json:"billable"`
}

type completeTimerRequest struct {
	Description *string `json:"description" validate:"omitempty,max=500"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type deleteFinishedRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,max=100"`
}

type timerResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     *uuid.UUID `json:"projectId"`
	ProjectName   *string    `json:"projectName,omitempty"`
	TaskID        *uuid.UUID `json:"taskId"`
	TaskTitle     *string    `json:"taskTitle,omitempty"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"startedAt"`
	PausedAt      *time.Time `json:"pausedAt"`
	ElapsedMs     int64      `json:"elapsedMs"`
	TotalPausedMs int64      `json:"totalPausedMs"`
	CompletedAt   *time.Time `json:"completedAt"`
	Note          *string    `json:"note"`
	Billable      bool       `json:"billable"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type completeResponse struct {
	Timer     timerResponse `json:"timer"`
	Entry     entryResponse `json:"entry"`
	XPGained  int           `json:"xpGained"`
	TotalXP   int64         `json:"totalXp"`
	Level     int           `json:"level"`
	LeveledUp bool          `json:"leveledUp"`
}

type deleteFinishedResponse struct {
	Deleted int `json:"deleted"`
}

// Create handles POST /api/timers.
func (h *TimerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTimerRequest
	if err := decodeJSON(r, &req, true); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), timer.CreateInput{
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		Note:      req.Note,
		Billable:  req.Billable,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.live(*t))
}

// List handles GET /api/timers.
func (h *TimerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := timer.ListInput{
		Limit:  q.Int("limit"),
		Offset: q.Int("offset"),
	}
	if s := q.String("status"); s != nil {
		status := domain.TimerStatus(*s)
		input.Status = &status
	}
	if err := q.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	refs := make([]dataloader.Ref, len(views))
	for i, v := range views {
		refs[i] = dataloader.Ref{ProjectID: v.Timer.ProjectID, TaskID: v.Timer.TaskID}
	}
	labels, err := dataloader.ResolveLabels(r.Context(), dataloader.FromContext(r.Context()), refs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]timerResponse, len(views))
	for i, v := range views {
		out[i] = toTimerResponse(v.Timer, v.ElapsedMs)
		out[i].ProjectName = labels[i].ProjectName
		out[i].TaskTitle = labels[i].TaskTitle
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/timers/{id}.
func (h *TimerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	labels, err := dataloader.ResolveLabels(r.Context(), dataloader.FromContext(r.Context()),
		[]dataloader.Ref{{ProjectID: v.Timer.ProjectID, TaskID: v.Timer.TaskID}})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := toTimerResponse(v.Timer, v.ElapsedMs)
	resp.ProjectName = labels[0].ProjectName
	resp.TaskTitle = labels[0].TaskTitle
	writeJSON(w, http.StatusOK, resp)
}

// Pause handles POST /api/timers/{id}/pause.
func (h *TimerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Pause)
}

// Resume handles POST /api/timers/{id}/resume.
func (h *TimerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Resume)
}

// Cancel handles POST /api/timers/{id}/cancel.
func (h *TimerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *TimerHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, timerID uuid.UUID) (*domain.Timer, error),
) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.live(*t))
}

// Complete handles POST /api/timers/{id}/complete.
func (h *TimerHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req completeTimerRequest
	if err := decodeJSON(r, &req, true); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Complete(r.Context(), id, timer.CompleteInput{
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, completeResponse{
		Timer:     toTimerResponse(res.Timer, res.Timer.ElapsedMs),
		Entry:     toEntryResponse(res.Entry),
		XPGained:  res.XPGained,
		TotalXP:   res.Award.TotalXP,
		Level:     res.Award.Level,
		LeveledUp: res.Award.LeveledUp,
	})
}

// DeleteFinished handles POST /api/timers/delete-finished.
func (h *TimerHandler) DeleteFinished(w http.ResponseWriter, r *http.Request) {
	var req deleteFinishedRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.DeleteFinished(r.Context(), timer.DeleteFinishedInput{IDs: req.IDs})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteFinishedResponse{Deleted: n})
}

// live renders a timer returned by a write, with elapsed time as of now.
func (h *TimerHandler) live(t domain.Timer) timerResponse {
	return toTimerResponse(t, t.CurrentElapsed(h.clock.Now()).Milliseconds())
}

func toTimerResponse(t domain.Timer, elapsedMs int64) timerResponse {
	return timerResponse{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		TaskID:        t.TaskID,
		Status:        string(t.Status),
		StartedAt:     t.StartedAt,
		PausedAt:      t.PausedAt,
		ElapsedMs:     elapsedMs,
		TotalPausedMs: t.TotalPausedMs,
		CompletedAt:   t.CompletedAt,
		Note:          t.Note,
		Billable:      t.Billable,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
