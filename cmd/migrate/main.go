package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/go-gin-boutique-api/internal/app/api"
	"github.com/Apurer/go-gin-boutique-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-boutique-api/internal/platform/postgres"
)

// migrate applies the boutique schema to the configured PostgreSQL database and exits.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN not set; nothing to migrate")
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer func() { _ = platformpostgres.Close(db) }()

	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	logger.Info("migration completed", slog.String("table", "boutique"))
}
