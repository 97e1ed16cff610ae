package cli

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/splitcheck/splitcheck-backend/internal/api"
	"github.com/splitcheck/splitcheck-backend/internal/infrastructure/config"
	"github.com/splitcheck/splitcheck-backend/internal/infrastructure/logging"
	"github.com/splitcheck/splitcheck-backend/internal/recognition"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port    int
	Verbose bool
}

// ParseServeFlags parses command line flags for the serve command.
func ParseServeFlags() *ServeFlags {
	flags := &ServeFlags{}
	flag.IntVar(&flags.Port, "port", 0, "Port to listen on (overrides config)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// RunServe runs the API server.
func RunServe(cfg *config.Config, flags *ServeFlags) error {
	// Set up logging
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "api")

	// Session state is in-memory only; idle sessions get evicted.
	store := session.NewStore(time.Duration(cfg.Session.IdleEvictionMinutes) * time.Minute)

	recognizer := recognition.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, receipt recognition will fail")
	}

	apiCfg := api.Config{
		Port:               cfg.Server.Port,
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		TipDenomination:    cfg.Tip.RoundingDenomination,
		RecognitionTimeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	}
	if flags.Port != 0 {
		apiCfg.Port = flags.Port
	}

	// Create and start server
	server := api.NewServer(apiCfg, store, recognizer, logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	// Start server (blocks until shutdown)
	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
