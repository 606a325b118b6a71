// Package httpapi exposes the REST surface: auth, notifications, posts, and
// image upload URLs. Handlers validate input at the boundary, call services,
// and map sentinel errors to HTTP statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dspetrov/flock/internal/logging"
	"github.com/dspetrov/flock/internal/server/config"
	"github.com/dspetrov/flock/internal/server/services"
)

type Server struct {
	address       string
	logger        logging.Logger
	users         *services.UserService
	notifications *services.NotificationService
	posts         *services.PostService
	images        *services.ImageService
	jwtSecret     []byte
	tokenTTL      time.Duration
	secureCookies bool
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService,
	ns *services.NotificationService, ps *services.PostService, is *services.ImageService) *Server {
	return &Server{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "http_server"),
		users:         us,
		notifications: ns,
		posts:         ps,
		images:        is,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenTTL:      cfg.TokenValidityDuration,
		secureCookies: cfg.SecureCookies(),
	}
}

// Handler builds the route table. Everything beyond signup/login/logout sits
// behind the session guard.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.Handle("GET /api/auth/me", s.requireAuth(http.HandlerFunc(s.handleMe)))

	mux.Handle("GET /api/notifications", s.requireAuth(http.HandlerFunc(s.handleListNotifications)))
	mux.Handle("DELETE /api/notifications", s.requireAuth(http.HandlerFunc(s.handleClearNotifications)))

	mux.Handle("POST /api/posts", s.requireAuth(http.HandlerFunc(s.handleCreatePost)))
	mux.Handle("GET /api/posts", s.requireAuth(http.HandlerFunc(s.handleFeed)))
	mux.Handle("GET /api/posts/{id}", s.requireAuth(http.HandlerFunc(s.handleGetPost)))
	mux.Handle("DELETE /api/posts/{id}", s.requireAuth(http.HandlerFunc(s.handleDeletePost)))
	mux.Handle("POST /api/posts/{id}/like", s.requireAuth(http.HandlerFunc(s.handleToggleLike)))

	mux.Handle("POST /api/accounts/{id}/follow", s.requireAuth(http.HandlerFunc(s.handleToggleFollow)))

	mux.Handle("POST /api/images/upload-url", s.requireAuth(http.HandlerFunc(s.handleUploadURL)))
	mux.Handle("GET /api/images/{key...}", s.requireAuth(http.HandlerFunc(s.handleDownloadURL)))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
