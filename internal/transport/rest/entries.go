package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/timeentry"
	"github.com/heartmarshall/questclock-backend/internal/transport/dataloader"
)

type entryService interface {
	Log(ctx context.Context, input timeentry.LogInput) (*domain.TimeEntry, error)
	List(ctx context.Context, input timeentry.ListInput) ([]domain.TimeEntry, error)
	Delete(ctx context.Context, entryID uuid.UUID) error
}

// EntryHandler serves the time entry endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type logEntryRequest struct {
	ProjectID   *uuid.UUID `json:"projectId"`
	TaskID      *uuid.UUID `json:"taskId"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	Minutes     int        `json:"minutes" validate:"required,min=1,max=1440"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Billable    bool       `json:"billable"`
}

type entryResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     *uuid.UUID `json:"projectId"`
	ProjectName   *string    `json:"projectName,omitempty"`
	TaskID        *uuid.UUID `json:"taskId"`
	TaskTitle     *string    `json:"taskTitle,omitempty"`
	Date          string     `json:"date"`
	Minutes       int        `json:"minutes"`
	Description   *string    `json:"description"`
	Billable      bool       `json:"billable"`
	SourceTimerID *uuid.UUID `json:"sourceTimerId"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Log handles POST /api/entries.
func (h *EntryHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logEntryRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	e, err := h.svc.Log(r.Context(), timeentry.LogInput{
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		Date:        req.Date,
		Minutes:     req.Minutes,
		Description: req.Description,
		Billable:    req.Billable,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*e))
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := timeentry.ListInput{
		ProjectID: q.UUID("projectId"),
		TaskID:    q.UUID("taskId"),
		From:      q.String("from"),
		To:        q.String("to"),
		Billable:  q.Bool("billable"),
		Limit:     q.Int("limit"),
		Offset:    q.Int("offset"),
	}
	if err := q.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	refs := make([]dataloader.Ref, len(entries))
	for i, e := range entries {
		refs[i] = dataloader.Ref{ProjectID: e.ProjectID, TaskID: e.TaskID}
	}
	labels, err := dataloader.ResolveLabels(r.Context(), dataloader.FromContext(r.Context()), refs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
		out[i].ProjectName = labels[i].ProjectName
		out[i].TaskTitle = labels[i].TaskTitle
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEntryResponse(e domain.TimeEntry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		TaskID:        e.TaskID,
		Date:          e.Date.Format(timeentry.DateLayout),
		Minutes:       e.Minutes,
		Description:   e.Description,
		Billable:      e.Billable,
		SourceTimerID: e.SourceTimerID,
		CreatedAt:     e.CreatedAt,
	}
}
