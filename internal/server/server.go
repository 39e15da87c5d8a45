package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pickem-crew/pickem-dashboard/internal/auth"
	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/config"
	"github.com/pickem-crew/pickem-dashboard/internal/handlers"
	"github.com/pickem-crew/pickem-dashboard/internal/logger"
	"github.com/pickem-crew/pickem-dashboard/internal/middleware"
)

const (
	// ServerShutdownTimeout is the timeout for graceful server shutdown
	ServerShutdownTimeout = 10 * time.Second
)

type Server struct {
	router      *chi.Mux
	config      *config.Config
	logger      *slog.Logger
	authService *auth.AuthService
	backend     *backend.Client
}

// NewServer wires the dashboard: one backend client shared by the auth
// service and every handler, so all of them see the same response cache.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	backendClient := backend.NewClient(cfg.APIBaseURL, backend.WithCacheTTL(cfg.CacheTTL))

	s := &Server{
		router:      chi.NewRouter(),
		config:      cfg,
		logger:      logger,
		authService: auth.NewAuthService(backendClient, cfg.Environment),
		backend:     backendClient,
	}

	s.setupMiddleware()

	if err := s.registerRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(60 * time.Second))
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxRequestBytes))
}

func (s *Server) registerRoutes() error {
	handlerService := &handlers.HandlerService{
		AuthService: s.authService,
		Backend:     s.backend,
		Environment: s.config.Environment,
	}

	corsMiddleware, err := middleware.NewCORS(s.config.AllowedOrigin)
	if err != nil {
		return fmt.Errorf("failed to build CORS middleware: %w", err)
	}

	// Public routes (no auth required)
	s.router.Get("/health/live", handlerService.HandleLive)
	s.router.Get("/health/ready", handlerService.HandleReady)
	s.router.Post("/login", handlerService.HandleLoginPost)

	// Data-loader routes (require authentication)
	s.router.Group(func(r chi.Router) {
		if corsMiddleware != nil {
			r.Use(middleware.CORS(corsMiddleware))
		}
		r.Use(s.authService.RequireAuth)

		r.Post("/logout", handlerService.HandleLogout)

		r.Get("/ui-api/leaderboard", handlerService.HandleLeaderboard)
		r.Get("/ui-api/analytics/roi-trends", handlerService.HandleROITrends)
		r.Get("/ui-api/analytics/streaks", handlerService.HandleStreakLeaders)
		r.Get("/ui-api/picks", handlerService.HandleListPicks)
		r.Post("/ui-api/picks", handlerService.HandleSubmitPick)

		// Commissioner routes (pick grading)
		r.Group(func(r chi.Router) {
			r.Use(s.authService.RequireCommissioner)
			r.Post("/ui-api/admin/batch-grade", handlerService.HandleBatchGrade)
		})
	})

	return nil
}

// Start the dashboard server. Blocks until ctx is cancelled or the listener
// fails, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard server listening", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down dashboard server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}

// Router exposes the chi mux for tests
func (s *Server) Router() *chi.Mux {
	return s.router
}
