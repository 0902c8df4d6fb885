package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

type userEnsurer interface {
	Ensure(ctx context.Context, id uuid.UUID, name string) error
}

// Provision makes sure an authenticated caller has a users row before the
// request reaches a service. Each id is ensured once per process.
func Provision(users userEnsurer, logger *slog.Logger) Middleware {
	var seen sync.Map

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if _, done := seen.Load(userID); !done {
				if err := users.Ensure(r.Context(), userID, ctxutil.UserNameFromCtx(r.Context())); err != nil {
					logger.ErrorContext(r.Context(), "provision user failed",
						slog.String("user_id", userID.String()),
						slog.String("error", err.Error()),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
					return
				}
				seen.Store(userID, struct{}{})
			}

			next.ServeHTTP(w, r)
		})
	}
}
