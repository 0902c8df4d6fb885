package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/user"
	"github.com/heartmarshall/questclock-backend/internal/service/xp"
)

type profileService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*user.Profile, error)
}

type xpHistoryService interface {
	History(ctx context.Context, input xp.HistoryInput) ([]domain.XPHistory, error)
}

// MeHandler serves the caller's profile and XP endpoints.
type MeHandler struct {
	profiles profileService
	xp       xpHistoryService
	log      *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(profiles profileService, xpSvc xpHistoryService, logger *slog.Logger) *MeHandler {
	return &MeHandler{profiles: profiles, xp: xpSvc, log: logger.With("handler", "me")}
}

type updateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Timezone *string `json:"timezone" validate:"omitempty,timezone"`
}

type progressResponse struct {
	XP             int64 `json:"xp"`
	Level          int   `json:"level"`
	XPIntoLevel    int64 `json:"xpIntoLevel"`
	XPForNextLevel int64 `json:"xpForNextLevel"`
}

type profileResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Timezone  string           `json:"timezone"`
	Progress  progressResponse `json:"progress"`
	CreatedAt time.Time        `json:"createdAt"`
}

type xpHistoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Action      string     `json:"action"`
	XPEarned    int        `json:"xpEarned"`
	Description *string    `json:"description"`
	TimerID     *uuid.UUID `json:"timerId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Profile handles GET /api/me.
func (h *MeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateProfile handles PATCH /api/me.
func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.profiles.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name, Timezone: req.Timezone})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// XP handles GET /api/me/xp.
func (h *MeHandler) XP(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p.Progress))
}

// History handles GET /api/me/xp/history.
func (h *MeHandler) History(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := xp.HistoryInput{Limit: q.Int("limit"), Offset: q.Int("offset")}
	if err := q.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, err := h.xp.History(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]xpHistoryResponse, len(rows))
	for i, row := range rows {
		out[i] = xpHistoryResponse{
			ID:          row.ID,
			Action:      string(row.Action),
			XPEarned:    row.XPEarned,
			Description: row.Description,
			TimerID:     row.TimerID,
			CreatedAt:   row.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func toProfileResponse(p *user.Profile) profileResponse {
	return profileResponse{
		ID:        p.User.ID,
		Name:      p.User.Name,
		Timezone:  p.User.Timezone,
		Progress:  toProgressResponse(p.Progress),
		CreatedAt: p.User.CreatedAt,
	}
}

func toProgressResponse(p domain.LevelProgress) progressResponse {
	return progressResponse{
		XP:             p.XP,
		Level:          p.Level,
		XPIntoLevel:    p.XPIntoLevel,
		XPForNextLevel: p.XPForNextLevel,
	}
}
