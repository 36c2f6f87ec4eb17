package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/AcebergChristian/jushuitan/internal/config"
	apphttp "github.com/AcebergChristian/jushuitan/internal/http"
	"github.com/AcebergChristian/jushuitan/internal/upstream"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)
	defer client.Close()

	r := apphttp.NewRouter(logger, cfg, client)

	logger.Info("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
