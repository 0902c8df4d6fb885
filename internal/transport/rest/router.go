package rest

import (
	"net/http"

	"github.com/heartmarshall/questclock-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler served by the router.
type Handlers struct {
	Health   *HealthHandler
	Timers   *TimerHandler
	Projects *ProjectHandler
	Entries  *EntryHandler
	Me       *MeHandler
	Game     *GameHandler
	// Metrics serves the Prometheus exposition format. Optional.
	Metrics http.Handler
}

// NewRouter registers all routes. api wraps every /api route and is where
// authentication and per-request loaders are installed.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	public := func(pattern string, fn http.Handler) {
		mux.Handle(pattern, middleware.Route(fn))
	}
	private := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(api(fn)))
	}

	public("GET /live", http.HandlerFunc(h.Health.Live))
	public("GET /ready", http.HandlerFunc(h.Health.Ready))
	public("GET /health", http.HandlerFunc(h.Health.Health))
	if h.Metrics != nil {
		public("GET /metrics", h.Metrics)
	}

	private("POST /api/timers", h.Timers.Create)
	private("GET /api/timers", h.Timers.List)
	private("POST /api/timers/delete-finished", h.Timers.DeleteFinished)
	private("GET /api/timers/{id}", h.Timers.Get)
	private("POST /api/timers/{id}/pause", h.Timers.Pause)
	private("POST /api/timers/{id}/resume", h.Timers.Resume)
	private("POST /api/timers/{id}/complete", h.Timers.Complete)
	private("POST /api/timers/{id}/cancel", h.Timers.Cancel)

	private("POST /api/projects", h.Projects.CreateProject)
	private("GET /api/projects", h.Projects.ListProjects)
	private("GET /api/projects/{id}", h.Projects.GetProject)
	private("PATCH /api/projects/{id}", h.Projects.UpdateProject)
	private("DELETE /api/projects/{id}", h.Projects.DeleteProject)
	private("POST /api/projects/{id}/tasks", h.Projects.CreateTask)
	private("GET /api/projects/{id}/tasks", h.Projects.ListTasks)
	private("PATCH /api/tasks/{id}", h.Projects.UpdateTask)
	private("DELETE /api/tasks/{id}", h.Projects.DeleteTask)

	private("POST /api/entries", h.Entries.Log)
	private("GET /api/entries", h.Entries.List)
	private("DELETE /api/entries/{id}", h.Entries.Delete)

	private("GET /api/me", h.Me.Profile)
	private("PATCH /api/me", h.Me.UpdateProfile)
	private("GET /api/me/xp", h.Me.XP)
	private("GET /api/me/xp/history", h.Me.History)

	private("GET /api/stats", h.Game.Stats)
	private("GET /api/achievements", h.Game.Achievements)
	private("POST /api/achievements/check", h.Game.CheckAchievements)
	private("GET /api/challenges/today", h.Game.TodayChallenge)
	private("POST /api/challenges/today/claim", h.Game.ClaimChallenge)
	private("GET /api/leaderboard", h.Game.Leaderboard)

	return mux
}
