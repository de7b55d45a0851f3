package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/services/catalog/application/api"
	appsvcs "github.com/ghuser/deloculator/services/catalog/application/services"
	"github.com/ghuser/deloculator/services/catalog/domain/models"
	"github.com/ghuser/deloculator/services/catalog/infrastructure/persistence/memory"
)

type stubSource struct {
	entries []*models.CatalogEntry
	err     error
}

func (s *stubSource) FetchProducts(context.Context) ([]*models.CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*models.CatalogEntry, len(s.entries))
	for i, e := range s.entries {
		c := *e
		out[i] = &c
	}
	return out, nil
}

func product(name, typ, sale, cost string) *models.CatalogEntry {
	return &models.CatalogEntry{
		Name:        name,
		ProductType: typ,
		SalePrice:   decimal.RequireFromString(sale),
		CostPrice:   decimal.RequireFromString(cost),
	}
}

func newRouter(src *stubSource) http.Handler {
	svc := appsvcs.NewCatalogService(memory.NewCatalogRepository(), src, nil, nil, logger.Discard())
	r := chi.NewRouter()
	api.Mount(r, &appsvcs.Services{Catalog: svc})
	return r
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSyncThenRead(t *testing.T) {
	src := &stubSource{entries: []*models.CatalogEntry{
		product("Chair Model X Chair", "Chair", "250", "120"),
		product("Table A Table", "Table", "400", "200"),
	}}
	h := newRouter(src)

	w := serve(h, http.MethodPost, "/catalog/sync")
	if w.Code != http.StatusOK {
		t.Fatalf("sync: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Status   string `json:"status"`
		Mode     string `json:"mode"`
		Inserted int    `json:"inserted"`
		Updated  int    `json:"updated"`
		Count    int    `json:"count"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Status != "success" || res.Mode != "upsert" || res.Inserted != 2 || res.Count != 2 {
		t.Fatalf("unexpected sync response %+v", res)
	}

	w = serve(h, http.MethodPost, "/catalog/sync?mode=upsert")
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Inserted != 0 || res.Updated != 2 {
		t.Fatalf("second sync must update in place, got %+v", res)
	}

	w = serve(h, http.MethodGet, "/catalog/grouped")
	var grouped []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &grouped)
	if w.Code != http.StatusOK || len(grouped) != 2 {
		t.Fatalf("grouped: got %d with %d entries", w.Code, len(grouped))
	}
	if grouped[0]["base_name"] != "Chair Model X" || grouped[0]["sale_price"] != "250" {
		t.Fatalf("unexpected grouped entry %v", grouped[0])
	}

	w = serve(h, http.MethodGet, "/catalog/search?q=table")
	var found []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &found)
	if len(found) != 1 {
		t.Fatalf("search: expected 1 match, got %d", len(found))
	}

	w = serve(h, http.MethodGet, "/catalog/"+found[0]["id"].(string))
	if w.Code != http.StatusOK {
		t.Fatalf("get entry: expected 200, got %d", w.Code)
	}
}

func TestSync_ReplaceAllMode(t *testing.T) {
	src := &stubSource{entries: []*models.CatalogEntry{product("Chair Model X Chair", "Chair", "250", "120")}}
	h := newRouter(src)
	serve(h, http.MethodPost, "/catalog/sync")

	w := serve(h, http.MethodPost, "/catalog/sync?mode=replace_all")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["mode"] != "replace_all" || res["inserted"] != float64(1) || res["count"] != float64(1) {
		t.Fatalf("unexpected response %v", res)
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    *stubSource
		method string
		path   string
		want   int
	}{
		{"unknown mode", &stubSource{}, http.MethodPost, "/catalog/sync?mode=merge", http.StatusBadRequest},
		{"source down", &stubSource{err: errors.New("quota exceeded")}, http.MethodPost, "/catalog/sync", http.StatusBadGateway},
		{"empty source", &stubSource{}, http.MethodPost, "/catalog/sync", http.StatusBadGateway},
		{"limit zero", &stubSource{}, http.MethodGet, "/catalog/search?q=a&limit=0", http.StatusBadRequest},
		{"limit too large", &stubSource{}, http.MethodGet, "/catalog/search?q=a&limit=101", http.StatusBadRequest},
		{"bad id", &stubSource{}, http.MethodGet, "/catalog/not-a-uuid", http.StatusBadRequest},
		{"unknown id", &stubSource{}, http.MethodGet, "/catalog/00000000-0000-0000-0000-000000000001", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(tt.src), tt.method, tt.path)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
