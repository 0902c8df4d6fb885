package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/achievement"
	"github.com/heartmarshall/questclock-backend/internal/service/challenge"
)

type statsService interface {
	Summary(ctx context.Context) (*domain.StatsSummary, error)
}

type achievementService interface {
	List(ctx context.Context) ([]achievement.Status, error)
	Check(ctx context.Context) ([]domain.Achievement, error)
}

type challengeService interface {
	Today(ctx context.Context) (*challenge.Status, error)
	Claim(ctx context.Context) (*domain.ChallengeClaim, error)
}

type leaderboardService interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
}

// GameHandler serves stats, achievements, the daily challenge and the
// leaderboard.
type GameHandler struct {
	stats        statsService
	achievements achievementService
	challenges   challengeService
	leaderboard  leaderboardService
	log          *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(
	stats statsService,
	achievements achievementService,
	challenges challengeService,
	leaderboard leaderboardService,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		stats:        stats,
		achievements: achievements,
		challenges:   challenges,
		leaderboard:  leaderboard,
		log:          logger.With("handler", "game"),
	}
}

type statsResponse struct {
	TotalMinutes    int   `json:"totalMinutes"`
	TodayMinutes    int   `json:"todayMinutes"`
	WeekMinutes     int   `json:"weekMinutes"`
	CompletedTimers int   `json:"completedTimers"`
	CurrentStreak   int   `json:"currentStreak"`
	XP              int64 `json:"xp"`
	Level           int   `json:"level"`
}

type achievementResponse struct {
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Kind        string     `json:"kind"`
	Threshold   int        `json:"threshold"`
	XP          int        `json:"xp"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

type challengeResponse struct {
	Day       string `json:"day"`
	Kind      string `json:"kind"`
	Target    int    `json:"target"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
	Claimed   bool   `json:"claimed"`
	XP        int    `json:"xp"`
}

type claimResponse struct {
	Day       string    `json:"day"`
	Kind      string    `json:"kind"`
	XPEarned  int       `json:"xpEarned"`
	ClaimedAt time.Time `json:"claimedAt"`
}

type leaderboardRowResponse struct {
	Rank   int       `json:"rank"`
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	XP     int64     `json:"xp"`
	Level  int       `json:"level"`
}

// Stats handles GET /api/stats.
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.stats.Summary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalMinutes:    s.TotalMinutes,
		TodayMinutes:    s.TodayMinutes,
		WeekMinutes:     s.WeekMinutes,
		CompletedTimers: s.CompletedTimers,
		CurrentStreak:   s.CurrentStreak,
		XP:              s.XP,
		Level:           s.Level,
	})
}

// Achievements handles GET /api/achievements.
func (h *GameHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.achievements.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]achievementResponse, len(list))
	for i, st := range list {
		out[i] = toAchievementResponse(st.Achievement)
		out[i].UnlockedAt = st.UnlockedAt
	}
	writeJSON(w, http.StatusOK, out)
}

// CheckAchievements handles POST /api/achievements/check and returns the
// achievements unlocked by this call.
func (h *GameHandler) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.achievements.Check(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]achievementResponse, len(unlocked))
	for i, a := range unlocked {
		out[i] = toAchievementResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// TodayChallenge handles GET /api/challenges/today.
func (h *GameHandler) TodayChallenge(w http.ResponseWriter, r *http.Request) {
	st, err := h.challenges.Today(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, challengeResponse{
		Day:       st.Challenge.Day.Format(time.DateOnly),
		Kind:      string(st.Challenge.Kind),
		Target:    st.Challenge.Target,
		Progress:  st.Progress,
		Completed: st.Completed,
		Claimed:   st.Claimed,
		XP:        st.XP,
	})
}

// ClaimChallenge handles POST /api/challenges/today/claim.
func (h *GameHandler) ClaimChallenge(w http.ResponseWriter, r *http.Request) {
	c, err := h.challenges.Claim(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, claimResponse{
		Day:       c.Day.Format(time.DateOnly),
		Kind:      string(c.Kind),
		XPEarned:  c.XPEarned,
		ClaimedAt: c.ClaimedAt,
	})
}

// Leaderboard handles GET /api/leaderboard.
func (h *GameHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	limit := q.Int("limit")
	if err := q.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]leaderboardRowResponse, len(rows))
	for i, row := range rows {
		out[i] = leaderboardRowResponse{Rank: row.Rank, UserID: row.UserID, Name: row.Name, XP: row.XP, Level: row.Level}
	}
	writeJSON(w, http.StatusOK, out)
}

func toAchievementResponse(a domain.Achievement) achievementResponse {
	return achievementResponse{
		Code:        a.Code,
		Name:        a.Name,
		Description: a.Description,
		Kind:        string(a.Kind),
		Threshold:   a.Threshold,
		XP:          a.XP,
	}
}
