package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dspetrov/flock/internal/common"
	"github.com/dspetrov/flock/internal/server/auth"
	"github.com/dspetrov/flock/internal/server/models"
	"github.com/dspetrov/flock/internal/server/services"
)

type signupRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleSignup registers an account. The account is persisted first; the
// session token is only minted after the insert succeeded, so a token can
// never reference an id that was not stored.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := s.users.Signup(ctx, services.SignupInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	if !s.issueSession(ctx, w, account) {
		return
	}

	s.logger.Info(ctx, "account created", "username", account.Username)
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	if !s.issueSession(ctx, w, account) {
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// handleLogout discards the session cookie. Idempotent: it succeeds whether
// or not a session existed.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// handleMe resolves the current caller. An account deleted after token
// issuance yields 200 with a null body; that is an accepted edge case, not
// an error.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := s.users.GetByID(ctx, callerID(r))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	followed, err := s.users.ToggleFollow(ctx, callerID(r), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	if followed {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Followed successfully"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Unfollowed successfully"})
}

// issueSession signs a token for the account and sets the session cookie.
// Reports false after writing the error response when signing fails.
func (s *Server) issueSession(ctx context.Context, w http.ResponseWriter, account *models.Account) bool {
	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	s.setSessionCookie(w, token)
	return true
}
