package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/splitcheck/splitcheck-backend/internal/cli"
	"github.com/splitcheck/splitcheck-backend/internal/infrastructure/config"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	flags := cli.ParseServeFlags()
	cfg := config.LoadOrEnv()

	if err := cli.RunServe(cfg, flags); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
