package services

import (
	"github.com/ghuser/deloculator/pkg/app"
	"github.com/ghuser/deloculator/pkg/cache"
	"github.com/ghuser/deloculator/pkg/config"
	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/services/catalog/domain/repositories"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/persistence/postgres"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/source/sheets"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/source/xlsx"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Catalog *CatalogService
}

// New wires the catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewCatalogRepository(a.Db, a.EventBus)

	var (
		locker  Locker
		grouped GroupedCache
	)
	if a.Redis != nil {
		locker = cache.NewLocker(a.Redis)
		grouped = cache.NewCatalogCache(a.Redis)
	}

	return &Services{
		Catalog: NewCatalogService(repo, NewSource(a.Config, a.Logger), locker, grouped, a.Logger),
	}
}

// NewSource picks the catalog source named by CATALOG_SOURCE.
func NewSource(cfg *config.Config, log logger.Logger) repositories.CatalogSource {
	if cfg.CatalogSource == config.CatalogSourceXLSX {
		return xlsx.New(cfg.CatalogXLSXPath, cfg.CatalogSheetName, log)
	}
	return sheets.New(cfg.GoogleSheetsID, cfg.CatalogSheetName, log, sheets.CredentialOptions(cfg.GoogleCredentialsFile)...)
}
