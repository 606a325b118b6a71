package httpapi

import (
	"context"
	"net/http"

	"github.com/dspetrov/flock/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth is the session guard: it verifies the token from the jwt
// cookie and attaches the resolved account id to the request context.
// Missing, invalid, or expired tokens short-circuit with 401 before any
// handler runs.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := auth.GetUserIDFromToken(cookie.Value, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the account id the guard attached to the context.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
