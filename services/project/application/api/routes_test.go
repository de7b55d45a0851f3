package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/deloculator/pkg/logger"
	"github.com/ghuser/deloculator/services/project/application/api"
	appsvcs "github.com/ghuser/deloculator/services/project/application/services"
	"github.com/ghuser/deloculator/services/project/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	api.Mount(r, &appsvcs.Services{
		Project: appsvcs.NewProjectService(memory.NewProjectRepository(), logger.Discard()),
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func createProject(t *testing.T, h http.Handler) string {
	t.Helper()
	w := do(t, h, http.MethodPost, "/projects", `{"name":"Kitchen","client":"ACME","discount_pct":"15","tax_pct":10}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decode(t, w)["id"].(string)
}

func TestProjectLifecycle_ReferenceQuote(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)

	for _, item := range []string{
		`{"name":"Chair Model X Chair","item_type":"Chair","unit_price":"250.00","unit_cost":"120.00","quantity":3}`,
		`{"name":"Table A Table","item_type":"Table","unit_price":"180.50","unit_cost":"85.25","quantity":2}`,
		`{"name":"Shelf","unit_price":"99.99","unit_cost":"45.00","quantity":5}`,
	} {
		w := do(t, h, http.MethodPost, "/projects/"+id+"/items", item)
		if w.Code != http.StatusCreated {
			t.Fatalf("add item: expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := do(t, h, http.MethodGet, "/projects/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get project: expected 200, got %d", w.Code)
	}
	summary := decode(t, w)["summary"].(map[string]any)
	want := map[string]string{
		"subtotal":   "1610.95",
		"revenue":    "1232.37675",
		"total_cost": "755.5",
		"profit":     "476.87675",
		"margin":     "38.7",
	}
	for k, v := range want {
		if summary[k] != v {
			t.Errorf("summary.%s = %v, want %s", k, summary[k], v)
		}
	}
}

func TestPostItem_DefaultQuantity(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)

	w := do(t, h, http.MethodPost, "/projects/"+id+"/items", `{"name":"Stool","unit_price":"10","unit_cost":"4"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	item := decode(t, w)
	if item["quantity"] != float64(1) || item["subtotal"] != "10" {
		t.Fatalf("unexpected item %v", item)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	h := newRouter()
	tests := []struct {
		name string
		body string
		want int
	}{
		{"discount above 100", `{"name":"X","discount_pct":"100.01"}`, http.StatusUnprocessableEntity},
		{"negative tax", `{"name":"X","tax_pct":"-1"}`, http.StatusUnprocessableEntity},
		{"missing name", `{"client":"ACME"}`, http.StatusUnprocessableEntity},
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"full discount", `{"name":"X","discount_pct":"100","tax_pct":"250"}`, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/projects", tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestItemEndpoints_Errors(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)
	missing := "00000000-0000-0000-0000-000000000001"

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"zero quantity", http.MethodPost, "/projects/" + id + "/items", `{"name":"A","unit_price":"1","unit_cost":"1","quantity":0}`, http.StatusUnprocessableEntity},
		{"negative price", http.MethodPost, "/projects/" + id + "/items", `{"name":"A","unit_price":"-1","unit_cost":"1"}`, http.StatusUnprocessableEntity},
		{"unknown project", http.MethodPost, "/projects/" + missing + "/items", `{"name":"A","unit_price":"1","unit_cost":"1"}`, http.StatusNotFound},
		{"bad project id", http.MethodGet, "/projects/not-a-uuid", "", http.StatusBadRequest},
		{"unknown item quantity", http.MethodPatch, "/projects/" + id + "/items/" + missing, `{"quantity":2}`, http.StatusNotFound},
		{"quantity too large", http.MethodPost, "/projects/" + id + "/items", `{"name":"A","unit_price":"1","unit_cost":"1","quantity":4294967297}`, http.StatusUnprocessableEntity},
		{"quantity above storage", http.MethodPatch, "/projects/" + id + "/items/" + missing, `{"quantity":2147483648}`, http.StatusUnprocessableEntity},
		{"quantity below one", http.MethodPatch, "/projects/" + id + "/items/" + missing, `{"quantity":0}`, http.StatusUnprocessableEntity},
		{"unknown item delete", http.MethodDelete, "/projects/" + id + "/items/" + missing, "", http.StatusNotFound},
		{"unknown project delete", http.MethodDelete, "/projects/" + missing, "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestPatchAndDeleteItem(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)
	w := do(t, h, http.MethodPost, "/projects/"+id+"/items", `{"name":"Chair","unit_price":"250","unit_cost":"120","quantity":1}`)
	itemID := decode(t, w)["id"].(string)

	w = do(t, h, http.MethodPatch, "/projects/"+id+"/items/"+itemID, `{"quantity":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["subtotal"]; got != "1000" {
		t.Fatalf("expected subtotal 1000, got %v", got)
	}

	w = do(t, h, http.MethodDelete, "/projects/"+id+"/items/"+itemID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/projects/"+id, "")
	if items := decode(t, w)["items"].([]any); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestUpdateProject_PartialAndArchive(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)

	w := do(t, h, http.MethodPut, "/projects/"+id, `{"notes":"Delivery in May","is_archived":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	p := decode(t, w)
	if p["name"] != "Kitchen" || p["notes"] != "Delivery in May" || p["is_archived"] != true {
		t.Fatalf("unexpected project after update %v", p)
	}

	w = do(t, h, http.MethodPut, "/projects/"+id, `{"discount_pct":"101"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for discount above 100, got %d", w.Code)
	}

	var listed []any
	w = do(t, h, http.MethodGet, "/projects", "")
	_ = json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed) != 0 {
		t.Fatalf("archived projects must be hidden by default, got %d", len(listed))
	}
	w = do(t, h, http.MethodGet, "/projects?include_archived=true", "")
	_ = json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed) != 1 {
		t.Fatalf("expected archived project with include_archived, got %d", len(listed))
	}
}

func TestExport(t *testing.T) {
	h := newRouter()
	id := createProject(t, h)
	do(t, h, http.MethodPost, "/projects/"+id+"/items", `{"name":"Chair","unit_price":"250","unit_cost":"120","quantity":3}`)

	w := do(t, h, http.MethodGet, "/projects/"+id+"/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("text export: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "project_"+id+".txt") {
		t.Fatalf("unexpected Content-Disposition %q", w.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(w.Body.String(), "Project: Kitchen") {
		t.Fatalf("unexpected text export:\n%s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/projects/"+id+"/export?format=xlsx", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Fatalf("xlsx export: got %d %q", w.Code, w.Header().Get("Content-Type"))
	}

	w = do(t, h, http.MethodGet, "/projects/"+id+"/export?format=pdf", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported format, got %d", w.Code)
	}
}
