// Package api exposes the tagging engine over HTTP for callers that want
// per-request classification instead of the batch file pipeline.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunward-optics/frametag/internal/logger"
	"github.com/sunward-optics/frametag/internal/processor"
	"github.com/sunward-optics/frametag/internal/telemetry"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// ServerConfig holds the settings the HTTP server needs.
type ServerConfig struct {
	Name    string
	Version string
	Port    int
	Debug   bool
}

// Server wraps the HTTP server and its routes.
type Server struct {
	engine  *gin.Engine
	srv     *http.Server
	logger  logger.Logger
	name    string
	version string
}

// NewServer builds the server with all routes and middleware registered.
func NewServer(
	cfg ServerConfig,
	h *Handler,
	tp *telemetry.Provider,
	limiter *processor.RateLimiter,
	log logger.Logger,
) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log))
	if limiter != nil {
		engine.Use(RateLimit(limiter))
	}

	s := &Server{
		engine:  engine,
		logger:  log,
		name:    cfg.Name,
		version: cfg.Version,
	}
	s.registerRoutes(h, tp)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting http server", logger.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down http server")
	return s.srv.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
