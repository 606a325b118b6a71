package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dspetrov/flock/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError converts a sentinel error from the service layer into
// the documented HTTP response. Unexpected errors are logged server-side and
// surface as a generic 500; the cause is never echoed to the client.
func (s *Server) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, common.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, common.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, common.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid username or password")
	case errors.Is(err, common.ErrEmptyPost):
		writeError(w, http.StatusBadRequest, "Post must have text or image")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
