// Package api wires the wizard endpoints into a gin HTTP server.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitcheck/splitcheck-backend/internal/api/handlers"
	"github.com/splitcheck/splitcheck-backend/internal/api/middleware"
	"github.com/splitcheck/splitcheck-backend/internal/domain/tip"
	"github.com/splitcheck/splitcheck-backend/internal/recognition"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// Config holds API server configuration.
type Config struct {
	Port               int
	AllowedOrigins     []string
	TipDenomination    float64
	RecognitionTimeout time.Duration
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:               8080,
		AllowedOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		TipDenomination:    tip.DefaultDenomination,
		RecognitionTimeout: 30 * time.Second,
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new API server.
func NewServer(cfg Config, store *session.Store, recognizer recognition.Recognizer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		config: cfg,
		router: router,
		logger: logger,
	}

	s.setupRoutes(store, recognizer)
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes(store *session.Store, recognizer recognition.Recognizer) {
	s.router.GET("/health", handlers.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessions := handlers.NewSessionsHandler(store)
	people := handlers.NewPeopleHandler(store)
	items := handlers.NewItemsHandler(store)
	receipt := handlers.NewReceiptHandler(store, recognizer, s.config.RecognitionTimeout)
	tips := handlers.NewTipHandler(store, tip.NewCalculator(s.config.TipDenomination))
	splits := handlers.NewSplitsHandler(store)
	summary := handlers.NewSummaryHandler(store)

	api := s.router.Group("/api")
	{
		api.POST("/sessions", sessions.Create)
		api.GET("/sessions/:id", sessions.Get)
		api.DELETE("/sessions/:id", sessions.Delete)
		api.POST("/sessions/:id/reset", sessions.Reset)
		api.POST("/sessions/:id/advance", sessions.Advance)
		api.POST("/sessions/:id/back", sessions.Back)

		api.POST("/sessions/:id/people", people.Add)
		api.DELETE("/sessions/:id/people/:personID", people.Remove)

		api.POST("/sessions/:id/items", items.Add)
		api.PATCH("/sessions/:id/items/:itemID", items.Update)
		api.DELETE("/sessions/:id/items/:itemID", items.Remove)

		api.POST("/sessions/:id/receipt", receipt.Upload)
		api.PUT("/sessions/:id/tip", tips.Set)
		api.POST("/sessions/:id/splits", splits.Adjust)

		api.GET("/sessions/:id/summary", summary.Get)
		api.GET("/sessions/:id/summary/share", summary.Share)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
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

// Router returns the gin engine for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
