package api

import (
	"context"
	"log/slog"

	storememory "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/memory"
	storepostgres "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/persistence/postgres"
	storesqlite "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/persistence/sqlite"
	storeports "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	platformpostgres "github.com/Apurer/go-gin-boutique-api/internal/platform/postgres"
	platformsqlite "github.com/Apurer/go-gin-boutique-api/internal/platform/sqlite"
)

// BuildStoreRepository picks postgres when a DSN is configured, then sqlite, then memory.
// A backend that cannot be reached falls through to the next one.
func BuildStoreRepository(ctx context.Context, cfg Config, logger *slog.Logger) (storeports.Repository, func()) {
	if cfg.PostgresDSN != "" {
		db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
		if err == nil {
			logger.Info("store repository configured with postgres")
			return storepostgres.NewRepository(db), func() { _ = platformpostgres.Close(db) }
		}
		logger.Warn("failed to connect to postgres, trying next backend", slog.String("error", err.Error()))
	}
	if cfg.SQLitePath != "" {
		repo, cleanup, err := openSQLite(ctx, cfg.SQLitePath)
		if err == nil {
			logger.Info("store repository configured with sqlite", slog.String("path", cfg.SQLitePath))
			return repo, cleanup
		}
		logger.Warn("failed to open sqlite, falling back to memory", slog.String("error", err.Error()))
	}
	logger.Warn("no database configured, falling back to in-memory store repository")
	return storememory.NewRepository(), func() {}
}

func openSQLite(ctx context.Context, path string) (storeports.Repository, func(), error) {
	db, err := platformsqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	repo, err := storesqlite.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return repo, func() { _ = db.Close() }, nil
}
