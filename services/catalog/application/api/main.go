package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers catalog endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/grouped", handlers.NewGetGroupedHandler(svcs).Execute)
		r.Get("/search", handlers.NewGetSearchHandler(svcs).Execute)
		r.Post("/sync", handlers.NewPostSyncHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetEntryHandler(svcs).Execute)
	})
}
