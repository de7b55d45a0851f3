// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/deloculator/pkg/httpx"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	projectdomain "github.com/ghuser/deloculator/services/project/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic message so storage details
// never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, projectdomain.ErrProjectNotFound),
		errors.Is(err, projectdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrCatalogEntryNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, projectdomain.ErrInvalidProject),
		errors.Is(err, projectdomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, projectdomain.ErrUnsupportedExportFormat),
		errors.Is(err, catalogdomain.ErrInvalidSyncMode):
		return http.StatusBadRequest // 400
	case errors.Is(err, catalogdomain.ErrSyncInProgress):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrCatalogSourceUnavailable),
		errors.Is(err, catalogdomain.ErrEmptyCatalogFetch):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
