// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/questclock-backend/internal/adapter/cache"
	"github.com/heartmarshall/questclock-backend/internal/adapter/postgres"
	achievementrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/achievement"
	challengerepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/challenge"
	projectrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/project"
	taskrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/task"
	entryrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/timeentry"
	timerrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/timer"
	userrepo "github.com/heartmarshall/questclock-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/questclock-backend/internal/adapter/postgres/xphistory"
	"github.com/heartmarshall/questclock-backend/internal/auth"
	"github.com/heartmarshall/questclock-backend/internal/config"
	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/metrics"
	"github.com/heartmarshall/questclock-backend/internal/service/achievement"
	"github.com/heartmarshall/questclock-backend/internal/service/challenge"
	"github.com/heartmarshall/questclock-backend/internal/service/leaderboard"
	"github.com/heartmarshall/questclock-backend/internal/service/project"
	"github.com/heartmarshall/questclock-backend/internal/service/stats"
	"github.com/heartmarshall/questclock-backend/internal/service/timeentry"
	"github.com/heartmarshall/questclock-backend/internal/service/timer"
	"github.com/heartmarshall/questclock-backend/internal/service/user"
	"github.com/heartmarshall/questclock-backend/internal/service/xp"
	"github.com/heartmarshall/questclock-backend/internal/transport/dataloader"
	"github.com/heartmarshall/questclock-backend/internal/transport/middleware"
	"github.com/heartmarshall/questclock-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, serves HTTP and shuts down gracefully
// once ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	var lbCache *cache.Leaderboard
	if cfg.Redis.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("leaderboard cache disabled", slog.String("error", err.Error()))
		} else {
			defer client.Close() //nolint:errcheck
			lbCache = cache.NewLeaderboard(client, cfg.Gamification.LeaderboardCacheTTL)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := NewHandler(cfg, logger, pool, lbCache, reg, clockwork.NewRealClock())

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the complete HTTP handler: repositories, services,
// routes and the middleware chain. lbCache may be nil.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	lbCache *cache.Leaderboard,
	reg *prometheus.Registry,
	clock clockwork.Clock,
) http.Handler {
	txm := postgres.NewTxManager(pool)
	m := metrics.New(reg)

	// Repositories.
	users := userrepo.New(pool)
	history := xphistory.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	timers := timerrepo.New(pool)
	entries := entryrepo.New(pool)
	unlocks := achievementrepo.New(pool)
	claims := challengerepo.New(pool)

	// Services.
	game := cfg.Gamification
	userSvc := user.NewService(logger, users, clock)
	xpSvc := xp.NewService(logger, users, history, clock)
	projectSvc := project.NewService(logger, projects, tasks, clock)
	timerSvc := timer.NewService(logger, timers, entries, users, projectSvc, xpSvc, txm, m,
		timer.Rewards{Started: game.TimerStartedXP, Completed: game.TimerCompletedXP}, clock)
	entrySvc := timeentry.NewService(logger, entries, projectSvc, clock)
	statsSvc := stats.NewService(logger, entries, timers, users, clock)
	achievementSvc := achievement.NewService(logger, unlocks, statsSvc, xpSvc, txm, clock)
	challengeSvc := challenge.NewService(logger, claims, entries, timers, users, xpSvc, txm,
		challenge.Settings{
			Targets: domain.ChallengeTargets{
				TrackMinutes:   game.ChallengeTrackMinutes,
				CompleteTimers: game.ChallengeCompleteTimers,
			},
			XP: game.DailyGoalXP,
		}, clock)

	// A nil *cache.Leaderboard must not reach the service as a non-nil interface.
	leaderboardSvc := leaderboard.NewService(logger, users, nil, game.LeaderboardSize)
	health := rest.NewHealthHandler(pool, BuildVersion())
	if lbCache != nil {
		leaderboardSvc = leaderboard.NewService(logger, users, lbCache, game.LeaderboardSize)
		health.WithOptional("cache", lbCache)
	}

	// The TTL only applies to Generate; the server validates tokens only.
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, time.Hour, clock)

	api := middleware.Chain(
		middleware.Auth(tokens),
		middleware.Provision(userSvc, logger),
		dataloader.Middleware(&dataloader.Repos{Project: projects, Task: tasks}),
	)

	mux := rest.NewRouter(rest.Handlers{
		Health:   health,
		Timers:   rest.NewTimerHandler(timerSvc, clock, logger),
		Projects: rest.NewProjectHandler(projectSvc, logger),
		Entries:  rest.NewEntryHandler(entrySvc, logger),
		Me:       rest.NewMeHandler(userSvc, xpSvc, logger),
		Game:     rest.NewGameHandler(statsSvc, achievementSvc, challengeSvc, leaderboardSvc, logger),
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}, api)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Metrics(m),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
