package boutiqueserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Middlewares run, in order, before HandlerFunc.
	Middlewares []gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine.
// Engine-wide middlewares must be registered before calling it.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	router.Use(corsMiddleware())
	for _, route := range getRoutes(handleFunctions) {
		handlers := make([]gin.HandlerFunc, 0, len(route.Middlewares)+1)
		handlers = append(handlers, route.Middlewares...)
		handlers = append(handlers, route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	return router
}

type ApiHandleFunctions struct {

	// Routes for the BoutiqueAPI part of the API
	BoutiqueAPI BoutiqueAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	api := &handleFunctions.BoutiqueAPI
	findByIDResolver := resolveStore(api.service, http.StatusNotFound)
	mutationResolver := resolveStore(api.service, http.StatusBadRequest)

	return []Route{
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			Healthz,
			nil,
		},
		{
			"ListBoutiques",
			http.MethodGet,
			"/api/boutiques",
			api.ListBoutiques,
			nil,
		},
		{
			"FindBoutiquesByName",
			http.MethodGet,
			"/api/boutique/list/nom",
			api.FindBoutiquesByName,
			nil,
		},
		{
			"GetBoutiqueById",
			http.MethodGet,
			"/api/boutique/list/:id",
			api.GetBoutiqueById,
			[]gin.HandlerFunc{findByIDResolver},
		},
		{
			"SortBoutiquesByOpinion",
			http.MethodGet,
			"/api/boutique/sort/avis",
			api.SortBoutiquesByOpinion,
			nil,
		},
		{
			"CreateBoutique",
			http.MethodPost,
			"/api/boutique/create",
			api.CreateBoutique,
			nil,
		},
		{
			"UpdateBoutique",
			http.MethodPost,
			"/api/boutique/update/:id",
			api.UpdateBoutique,
			[]gin.HandlerFunc{mutationResolver},
		},
		{
			"UpdateBoutique",
			http.MethodPut,
			"/api/boutique/update/:id",
			api.UpdateBoutique,
			[]gin.HandlerFunc{mutationResolver},
		},
		{
			"UpdateBoutique",
			http.MethodPatch,
			"/api/boutique/update/:id",
			api.UpdateBoutique,
			[]gin.HandlerFunc{mutationResolver},
		},
		{
			"DeleteBoutique",
			http.MethodDelete,
			"/api/boutique/delete/:id",
			api.DeleteBoutique,
			[]gin.HandlerFunc{mutationResolver},
		},
	}
}
