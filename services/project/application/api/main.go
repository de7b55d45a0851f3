package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/services/project/application/handlers"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
)

// ProjectRoutes registers project and item endpoints on the provided chi router.
func ProjectRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers project and item endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handlers.NewListProjectsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostProjectHandler(svcs).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetProjectHandler(svcs).Execute)
			r.Put("/", handlers.NewPutProjectHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteProjectHandler(svcs).Execute)
			r.Get("/export", handlers.NewGetExportHandler(svcs).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
			r.Patch("/items/{itemID}", handlers.NewPatchItemHandler(svcs).Execute)
			r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}
