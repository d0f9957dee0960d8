package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/api/middleware"
	"github.com/feral-file/founder-scout/internal/api/rest"
	"github.com/feral-file/founder-scout/internal/api/shared/executor"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/metrics"
	"github.com/feral-file/founder-scout/internal/pipeline"
	"github.com/feral-file/founder-scout/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	pipeline   pipeline.Pipeline
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server; a nil gatherer disables /metrics
func New(cfg Config, st store.Store, p pipeline.Pipeline, gatherer prometheus.Gatherer) *Server {
	return &Server{
		config:   cfg,
		store:    st,
		pipeline: p,
		gatherer: gatherer,
	}
}

// Handler builds the gin router with every route and middleware
func (s *Server) Handler() http.Handler {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSOrigins))

	exec := executor.NewExecutor(s.store, s.pipeline)
	restHandler := rest.NewHandler(exec)

	var metricsHandler http.Handler
	if s.gatherer != nil {
		metricsHandler = metrics.Handler(s.gatherer)
	}
	rest.SetupRoutes(router, restHandler, s.config.Auth, metricsHandler)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server and waits for background pipeline runs
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.pipeline != nil {
		done := make(chan struct{})
		go func() {
			s.pipeline.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			return fmt.Errorf("pipeline run still in progress: %w", ctx.Err())
		}
	}

	return nil
}
