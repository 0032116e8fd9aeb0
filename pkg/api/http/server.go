package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestMetrics receives one observation per served request
type RequestMetrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Server represents the HTTP application server
type Server struct {
	router  *gin.Engine
	server  *http.Server
	appName string
	logger  *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr string
	// AppName is the name substituted when the project was generated
	AppName string
	Debug   bool
	Logger  *zap.Logger
	// Metrics is optional
	Metrics RequestMetrics
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// "/uptime/" is a different path, not a redirect target
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	if cfg.Metrics != nil {
		router.Use(requestMetrics(cfg.Metrics))
	}

	s := &Server{
		router:  router,
		appName: cfg.AppName,
		logger:  logger,
	}

	s.setupRoutes()
	router.NoMethod(s.handleMethodNotAllowed)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// setupRoutes registers the application routes.
// Every GET route also answers HEAD and OPTIONS.
func (s *Server) setupRoutes() {
	s.addRoute("/", s.handleIndex)

	// Kubernetes liveness/readiness probe
	s.addRoute("/uptime", s.handleUptime)
}

func (s *Server) addRoute(path string, handler gin.HandlerFunc) {
	s.router.GET(path, handler)
	s.router.HEAD(path, handler)
	s.router.OPTIONS(path, s.handleOptions)
}

// Handler returns the routed handler without starting a listener
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens on the configured address and blocks until the server stops
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return s.Serve(listener)
}

// Serve runs the listen loop on an existing listener.
// It returns nil once Shutdown has been called.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("starting HTTP server", zap.String("addr", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
