// Package api wires the matching engine, reconciler, and storage behind a
// small HTTP surface.
package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bankmatch/internal/api/handlers"
	"bankmatch/internal/domain/matcher"
	"bankmatch/internal/infrastructure/storage"
	"bankmatch/internal/reconciler"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config Config
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new API server around the engine and storage.
func NewServer(cfg Config, m *matcher.Matcher, repo storage.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}

	s.setupRoutes(m, repo)

	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(m *matcher.Matcher, repo storage.Repository) {
	healthHandler := handlers.NewHealthHandler()
	matchHandler := handlers.NewMatchHandler(m)
	reconcileHandler := handlers.NewReconcileHandler(reconciler.New(m), repo, s.logger)
	runsHandler := handlers.NewRunsHandler(repo)

	api := s.router.Group("/api")
	{
		api.GET("/health", healthHandler.Get)
		api.POST("/match/attachment", matchHandler.FindAttachment)
		api.POST("/match/transaction", matchHandler.FindTransaction)
		api.POST("/reconcile", reconcileHandler.Reconcile)
		api.GET("/runs", runsHandler.List)
		api.GET("/runs/:id", runsHandler.Get)
	}
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting API server", "addr", addr)
	return s.router.Run(addr)
}
