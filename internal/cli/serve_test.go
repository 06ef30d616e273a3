package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/goliatone/go-formbuilder/pkg/library"
)

func TestNewRouter(t *testing.T) {
	lib := library.NewMemory()
	_, err := library.Seed(context.Background(), lib)
	gt.NoError(t, err).Required()

	router, pattern, err := newRouter(lib, "/v1")
	gt.NoError(t, err).Required()
	gt.Value(t, pattern).Equal("/v1/api/forms")

	for path, want := range map[string]int{
		"/healthz":                   http.StatusNoContent,
		"/v1/api/forms":              http.StatusOK,
		"/v1/api/forms/kyc-form":     http.StatusOK,
		"/v1/api/forms/unknown-form": http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		gt.Value(t, rec.Code).Equal(want)
	}
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, server) }()
	cancel()

	gt.NoError(t, <-done)
}
