package sampleforms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/library"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

type handlerResponse struct {
	Data []Item `json:"data"`
}

func newStore(t *testing.T, ids ...string) library.Store {
	t.Helper()
	store := library.NewMemory()
	for _, id := range ids {
		entry := library.Entry{ID: id, Title: model.NewLocalizedString(strings.ToUpper(id), "vi", "vi-"+id)}
		if err := store.Put(context.Background(), entry, []byte(`{"title":{"default":"`+id+`"},"pages":[]}`)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	return store
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []Item {
	t.Helper()
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil {
		t.Fatalf("expected data array, got null")
	}
	return payload.Data
}

func TestNewHandler_ListsDefaultSamples(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	items := decodeList(t, rec)
	if len(items) != 2 {
		t.Fatalf("expected 2 samples, got %#v", items)
	}
	if items[0].Value != "customer-questionnaire" || items[0].Label != "Customer Questionnaire" {
		t.Fatalf("unexpected first item: %#v", items[0])
	}
	if items[1].Value != "kyc-form" {
		t.Fatalf("unexpected second item: %#v", items[1])
	}
}

func TestNewHandler_SearchLimitAndLocale(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha", "alpine", "beta")), WithMaxLimit(1))

	req := httptest.NewRequest(http.MethodGet, "/api/forms?q=alp&limit=10&locale=vi", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	items := decodeList(t, rec)
	if len(items) != 1 {
		t.Fatalf("expected limit clamp to 1, got %#v", items)
	}
	if items[0].Value != "alpha" || items[0].Label != "vi-alpha" {
		t.Fatalf("unexpected item: %#v", items[0])
	}
}

func TestNewHandler_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha")))

	req := httptest.NewRequest(http.MethodGet, "/api/forms?limit=-1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if items := decodeList(t, rec); len(items) != 0 {
		t.Fatalf("expected empty data array, got %#v", items)
	}
}

func TestNewHandler_GetForm(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha")))

	for _, path := range []string{"/api/forms/alpha", "/api/forms/alpha.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, rec.Code)
		}
		if got := rec.Body.String(); got != `{"title":{"default":"alpha"},"pages":[]}` {
			t.Fatalf("%s: unexpected body %q", path, got)
		}
	}
}

func TestNewHandler_NotFound(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha")))

	for _, path := range []string{"/api/forms/missing", "/api/forms/alpha/extra", "/api/formsalpha", "/other"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", path, rec.Code)
		}
	}
}

func TestNewHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha")))

	req := httptest.NewRequest(http.MethodHead, "/api/forms/alpha", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithStore(newStore(t, "alpha")),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithStore(newStore(t, "alpha")))

	req := httptest.NewRequest(http.MethodPost, "/api/forms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}
