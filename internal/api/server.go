package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/partslane/pricecheck/internal/api/handlers"
	"github.com/partslane/pricecheck/internal/domain/catalog"
	"github.com/partslane/pricecheck/internal/domain/reconciler"
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

// Server is the HTTP API server hosting the reconciliation engine.
// The catalog is loaded before the server starts and never changes, so
// concurrent reconcile requests share it safely.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new API server bound to the given catalog.
func NewServer(cfg Config, cat *catalog.Catalog, logger *slog.Logger) *Server {
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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}
	s.setupRoutes(cat)

	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(cat *catalog.Catalog) {
	// Health check (no /api prefix - for load balancers)
	s.router.GET("/health", handlers.Health)

	engine := reconciler.New(cat, s.logger)

	api := s.router.Group("/api")
	{
		catalogHandler := handlers.NewCatalogHandler(cat)
		api.GET("/catalog/stats", catalogHandler.Stats)

		reconcileHandler := handlers.NewReconcileHandler(engine, s.logger)
		api.POST("/reconcile", reconcileHandler.Reconcile)
		api.POST("/reconcile/export", reconcileHandler.Export)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
