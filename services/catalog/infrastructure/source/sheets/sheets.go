// Package sheets reads the product catalog from a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/ghuser/deloculator/pkg/logger"
	catalogdomain "github.com/ghuser/deloculator/services/catalog/domain"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/source"
)

// Source implements repositories.CatalogSource over the Sheets v4 API.
// The API client is created on first fetch, so a process can start without
// reachable credentials and report the problem as a failed sync instead.
type Source struct {
	spreadsheetID string
	sheetName     string
	opts          []option.ClientOption
	log           logger.Logger

	mu     sync.Mutex
	values *sheetsapi.SpreadsheetsValuesService
}

// CredentialOptions returns the client option for credentials, given either a
// path to a service account key file or the key JSON itself.
func CredentialOptions(credentials string) []option.ClientOption {
	creds := strings.TrimSpace(credentials)
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

// New returns a Source for one sheet of a spreadsheet. Extra opts are applied
// after the read-only scope, so tests can point the client at a fake endpoint.
func New(spreadsheetID, sheetName string, log logger.Logger, opts ...option.ClientOption) *Source {
	return &Source{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		opts:          append([]option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope)}, opts...),
		log:           log,
	}
}

func (s *Source) client(ctx context.Context) (*sheetsapi.SpreadsheetsValuesService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values != nil {
		return s.values, nil
	}
	svc, err := sheetsapi.NewService(ctx, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: sheets client: %v", catalogdomain.ErrCatalogSourceUnavailable, err)
	}
	s.values = svc.Spreadsheets.Values
	return s.values, nil
}

// FetchProducts reads the catalog sheet. Any API failure is reported as
// ErrCatalogSourceUnavailable.
func (s *Source) FetchProducts(ctx context.Context) ([]*models.CatalogEntry, error) {
	values, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	readRange := fmt.Sprintf("'%s'!%s", s.sheetName, source.Columns)
	resp, err := values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", catalogdomain.ErrCatalogSourceUnavailable, readRange, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, r := range resp.Values {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = fmt.Sprint(v)
		}
	}

	entries, rejected := source.ParseRows(rows)
	for _, err := range rejected {
		s.log.WarnContext(ctx, "skipping catalog row", "sheet", s.sheetName, "error", err)
	}
	s.log.InfoContext(ctx, "fetched catalog from google sheets", "products", len(entries))
	return entries, nil
}
