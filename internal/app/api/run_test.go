package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	boutiqueserver "github.com/Apurer/go-gin-boutique-api/go"
	storememory "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/memory"
	storepostgres "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/persistence/postgres"
	storeworkflows "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/workflows"
	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	storeports "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	platformobservability "github.com/Apurer/go-gin-boutique-api/internal/platform/observability"
	platformsqlite "github.com/Apurer/go-gin-boutique-api/internal/platform/sqlite"
)

func TestNewEngine_ServesBoutiqueRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewStoreService(storememory.NewRepository(), &platformobservability.Instruments{Logger: discardLogger()})
	handlers := boutiqueserver.ApiHandleFunctions{
		BoutiqueAPI: boutiqueserver.NewBoutiqueAPI(service, storeworkflows.NewInlineStoreWorkflows(service)),
	}
	router := NewEngine("boutique-test", discardLogger())
	boutiqueserver.NewRouterWithGinEngine(router, handlers)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/boutique/create", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boutiques", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Test creation")
}

func TestConnectTemporalClient_Disabled(t *testing.T) {
	_, err := ConnectTemporalClient(Config{TemporalDisabled: true}, nil)
	require.ErrorContains(t, err, "temporal disabled")
}

func TestNewStoreWorkflows_LocalRepositoryStaysInline(t *testing.T) {
	instruments := &platformobservability.Instruments{Logger: discardLogger()}
	sqliteCfg := Config{SQLitePath: platformsqlite.MemoryPath}
	sqliteRepo, cleanup := BuildStoreRepository(context.Background(), sqliteCfg, discardLogger())
	defer cleanup()

	// Temporal is left enabled in every config, so only the repository decides.
	cases := map[string]struct {
		cfg  Config
		repo storeports.Repository
	}{
		"memory":        {cfg: Config{}, repo: storememory.NewRepository()},
		"sqlite memory": {cfg: sqliteCfg, repo: sqliteRepo},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			service := NewStoreService(tc.repo, instruments)
			workflows, closeWorkflows := NewStoreWorkflows(tc.cfg, tc.repo, service, instruments)
			defer closeWorkflows()

			require.IsType(t, &storeworkflows.InlineStoreWorkflows{}, workflows)
			created, err := workflows.CreateStore(context.Background(), storetypes.CreateStoreInput{})
			require.NoError(t, err)

			stored, err := service.GetByID(context.Background(), created.ID)
			require.NoError(t, err)
			require.Equal(t, "Test creation", stored.Name)
		})
	}
}

func TestSharesStoreRepository(t *testing.T) {
	fileCfg := Config{SQLitePath: filepath.Join(t.TempDir(), "boutique.db")}
	fileRepo, cleanup := BuildStoreRepository(context.Background(), fileCfg, discardLogger())
	defer cleanup()

	require.True(t, sharesStoreRepository(fileCfg, fileRepo))
	require.True(t, sharesStoreRepository(Config{PostgresDSN: "host=db"}, storepostgres.NewRepository(nil)))
	require.False(t, sharesStoreRepository(Config{}, storememory.NewRepository()))
	require.False(t, sharesStoreRepository(Config{PostgresDSN: "host=db"}, storememory.NewRepository()))
}
