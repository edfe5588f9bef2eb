//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/Apurer/go-gin-boutique-api/test/pact"

	boutiqueserver "github.com/Apurer/go-gin-boutique-api/go"
	storememory "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/memory"
	storeobs "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/observability"
	storeworkflows "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/workflows"
	storeapp "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestBoutiqueProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateBoutiquesBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.repo.Reset()
			return nil, nil
		},
		pacttest.StateBoutiqueExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.repo.Reset()
			if setup {
				app.seedBoutique(t, pacttest.ExistingBoutiqueID)
			}
			return nil, nil
		},
		pacttest.StateBoutiqueMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.repo.Reset()
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.repo.Reset()
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *storememory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	repo := storememory.NewRepository()
	service := storeobs.New(storeapp.NewService(repo))
	handlers := boutiqueserver.ApiHandleFunctions{
		BoutiqueAPI: boutiqueserver.NewBoutiqueAPI(service, storeworkflows.NewInlineStoreWorkflows(service)),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = boutiqueserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{repo: repo, server: server}
}

func (a *contractProviderApp) seedBoutique(t testing.TB, id int64) {
	t.Helper()
	store, err := domain.NewStore("Chez Pact", "12 Rue du Contrat", "Lyon", 69001)
	require.NoError(t, err)
	require.NoError(t, store.AssignID(id))
	store.Rate(pacttest.ExistingBoutiqueOpinion)
	a.repo.Seed(store)
}
