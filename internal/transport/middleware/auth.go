package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/questclock-backend/internal/auth"
	"github.com/heartmarshall/questclock-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth validates a bearer token when present and stores the caller
// identity in the context. Requests without a token pass through
// anonymously; services reject them with domain.ErrUnauthorized.
// An invalid token is answered with 401 right away.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid or expired token")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			if id.Name != "" {
				ctx = ctxutil.WithUserName(ctx, id.Name)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
