package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dspetrov/flock/internal/common"
)

type createPostRequest struct {
	Text     string `json:"text"`
	ImageKey string `json:"img"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := s.posts.Create(ctx, callerID(r), req.Text, req.ImageKey)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed, err := s.posts.Feed(ctx)
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := s.posts.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.posts.Delete(ctx, r.PathValue("id"), callerID(r))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, common.ErrorForbidden):
			writeError(w, http.StatusForbidden, "You are not authorized to delete this post")
		default:
			s.writeServiceError(ctx, w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	liked, err := s.posts.ToggleLike(ctx, r.PathValue("id"), callerID(r))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		s.writeServiceError(ctx, w, err)
		return
	}

	if liked {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Post liked successfully"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Post unliked successfully"})
}
