package boutiqueserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	storehttpmapper "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/http/mapper"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application"
	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	apierrors "github.com/Apurer/go-gin-boutique-api/internal/shared/errors"
	"github.com/Apurer/go-gin-boutique-api/internal/shared/serializer"
)

// BoutiqueAPI wires HTTP transport with the boutiques bounded context service and workflows.
type BoutiqueAPI struct {
	service    ports.Service
	workflows  ports.WorkflowOrchestrator
	serializer *serializer.Serializer
}

// NewBoutiqueAPI creates a BoutiqueAPI backed by the provided service.
func NewBoutiqueAPI(service ports.Service, workflows ports.WorkflowOrchestrator) BoutiqueAPI {
	return BoutiqueAPI{service: service, workflows: workflows, serializer: serializer.New()}
}

// Get /api/boutiques
// Lists every store
func (api *BoutiqueAPI) ListBoutiques(c *gin.Context) {
	stores, err := api.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, fmt.Errorf("list stores: %w", err))
		return
	}
	api.respondList(c, stores)
}

// Get /api/boutique/list/nom
// Finds stores by exact name
func (api *BoutiqueAPI) FindBoutiquesByName(c *gin.Context) {
	stores, err := api.service.FindByName(c.Request.Context(), c.Query("nom"))
	if err != nil {
		if errors.Is(err, application.ErrMissingName) {
			respondEnvelope(c, http.StatusBadRequest, missingNameMessage)
			return
		}
		apierrors.RespondError(c, fmt.Errorf("find stores by name: %w", err))
		return
	}
	api.respondList(c, stores)
}

// Get /api/boutique/list/:id
// Find store by ID
func (api *BoutiqueAPI) GetBoutiqueById(c *gin.Context) {
	store, ok := resolvedStore(c)
	if !ok {
		respondEnvelope(c, http.StatusNotFound, storeNotFoundMessage)
		return
	}
	payload, err := api.serializer.Serialize(toBoutique(store))
	if err != nil {
		respondEnvelope(c, http.StatusBadRequest, fmt.Sprintf(lookupFailedMessage, err))
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Get /api/boutique/sort/avis
// Finds stores rated within [min, max]
func (api *BoutiqueAPI) SortBoutiquesByOpinion(c *gin.Context) {
	input := storetypes.OpinionRange{
		Min: coerceInt(c.Query("min")),
		Max: coerceInt(c.Query("max")),
	}
	stores, err := api.service.SortByOpinion(c.Request.Context(), input)
	if err != nil {
		respondEnvelope(c, http.StatusBadRequest, fmt.Sprintf(lookupFailedMessage, err))
		return
	}
	api.respondList(c, stores)
}

// Post /api/boutique/create
// Creates a store, from the placeholder values when no payload is sent
func (api *BoutiqueAPI) CreateBoutique(c *gin.Context) {
	var payload CreateBoutiqueRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondEnvelope(c, http.StatusBadRequest, err.Error())
		return
	}
	input := storehttpmapper.ToCreateInput(storehttpmapper.StorePayload{
		Name:       payload.Nom,
		Address:    payload.Adresse,
		City:       payload.Ville,
		PostalCode: payload.CodePostal,
	})
	if _, err := api.createStore(c.Request.Context(), input); err != nil {
		respondEnvelope(c, http.StatusBadRequest, err.Error())
		return
	}
	respondEnvelope(c, http.StatusCreated, storeCreatedMessage)
}

func (api *BoutiqueAPI) createStore(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	if api.workflows != nil {
		return api.workflows.CreateStore(ctx, input)
	}
	return api.service.Create(ctx, input)
}

// Post|Put|Patch /api/boutique/update/:id
// Rates a store, 10 when no opinion is sent
func (api *BoutiqueAPI) UpdateBoutique(c *gin.Context) {
	store, ok := resolvedStore(c)
	if !ok {
		respondEnvelope(c, http.StatusBadRequest, storeNotFoundMessage)
		return
	}
	var payload UpdateBoutiqueRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondEnvelope(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := api.service.Update(c.Request.Context(), storehttpmapper.ToUpdateInput(store.ID, payload.Avis)); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			respondEnvelope(c, http.StatusBadRequest, storeNotFoundMessage)
			return
		}
		respondEnvelope(c, http.StatusNotModified, fmt.Sprintf(updateFailedMessage, store.ID, err))
		return
	}
	respondEnvelope(c, http.StatusCreated, storeUpdatedMessage)
}

// Delete /api/boutique/delete/:id
// Deletes a store
func (api *BoutiqueAPI) DeleteBoutique(c *gin.Context) {
	store, ok := resolvedStore(c)
	if !ok {
		respondEnvelope(c, http.StatusBadRequest, storeNotFoundMessage)
		return
	}
	if err := api.service.Delete(c.Request.Context(), store.ID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			respondEnvelope(c, http.StatusBadRequest, storeNotFoundMessage)
			return
		}
		respondEnvelope(c, http.StatusNotModified, fmt.Sprintf(deleteFailedMessage, err))
		return
	}
	respondEnvelope(c, http.StatusCreated, storeDeletedMessage)
}

// Get /healthz
func Healthz(c *gin.Context) {
	respondEnvelope(c, http.StatusOK, "ok")
}

func (api *BoutiqueAPI) respondList(c *gin.Context, stores []*domain.Store) {
	payload, err := api.serializer.SerializeList(toBoutiques(stores))
	if err != nil {
		respondEnvelope(c, http.StatusBadRequest, fmt.Sprintf(lookupFailedMessage, err))
		return
	}
	c.JSON(http.StatusOK, payload)
}

// bindOptionalJSON decodes a JSON request body into dest. Empty and non-JSON bodies leave dest untouched.
func bindOptionalJSON(c *gin.Context, dest any) error {
	if c.ContentType() != binding.MIMEJSON {
		return nil
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", application.ErrSerializationFormat, err)
	}
	return nil
}

func toBoutique(store *domain.Store) *Boutique {
	return fromStoreDTO(storehttpmapper.FromDomainStore(store))
}

func toBoutiques(stores []*domain.Store) []*Boutique {
	dtos := storehttpmapper.FromDomainStores(stores)
	result := make([]*Boutique, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, fromStoreDTO(dto))
	}
	return result
}

func fromStoreDTO(dto storehttpmapper.Store) *Boutique {
	return &Boutique{
		Id:         dto.ID,
		Nom:        dto.Name,
		Adresse:    dto.Address,
		Ville:      dto.City,
		CodePostal: dto.PostalCode,
		Avis:       dto.Opinion,
	}
}
