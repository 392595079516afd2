// Package server provides the HTTP API for Atsumeru.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/atsumeru/internal/aggregator"
	"github.com/hyperjump/atsumeru/internal/config"
)

// Server is the HTTP server for the Atsumeru API.
type Server struct {
	aggregator *aggregator.Aggregator
	config     *config.Config
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(agg *aggregator.Aggregator, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		aggregator: agg,
		config:     cfg,
		logger:     logger,
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/auth/login", s.handleLogin)
	r.Post("/api/v1/auth/logout", s.handleLogout)
	r.Get("/api/v1/auth/status", s.handleAuthStatus)
	r.Get("/api/v1/sources", s.handleSources)
	r.Get("/api/v1/config", s.handleConfig)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
