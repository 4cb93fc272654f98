package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/api"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/config"
	apphttp "github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/http"
	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/store"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	apic := api.New(cfg.APIBaseURL, cfg.APITimeout)
	st := store.New(apic)

	r := apphttp.NewRouter(logger, cfg, apic, st)

	logger.Info("listening", slog.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
