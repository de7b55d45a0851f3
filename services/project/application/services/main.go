package services

import (
	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/services/project/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Project *ProjectService
}

// New wires the project application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProjectRepository(a.Db)
	return &Services{
		Project: NewProjectService(repo, a.Logger),
	}
}
