//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	"github.com/Apurer/go-gin-boutique-api/internal/platform/migrations"
	"github.com/Apurer/go-gin-boutique-api/internal/testing/repositorytest"
)

func setupStorePostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("boutique_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupStorePostgresContainer(t)
	defer cleanup()

	repositorytest.Run(t, func(t *testing.T) ports.Repository {
		require.NoError(t, db.Exec("TRUNCATE TABLE boutique").Error)
		return NewRepository(db)
	})
}

func TestRepository_NullOpinionRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupStorePostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved := repositorytest.MustSave(t, repo, "Alpha", repositorytest.Opinion(4))
	saved.Opinion = nil
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	require.Nil(t, updated.Opinion)

	found, err := repo.FindByOpinionRange(ctx, 0, 100)
	require.NoError(t, err)
	require.Empty(t, found)
}
