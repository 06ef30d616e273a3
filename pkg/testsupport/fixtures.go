// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

// LoadForm reads a wire-format fixture and decodes it with the default
// import options. Failures abort the test.
func LoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := LoadFormFromPath(Context(), path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// LoadFormFromPath returns a decoded form without requiring testing.T, so
// callers can wire fixtures in setup functions.
func LoadFormFromPath(ctx context.Context, path string, options ...surveyjson.ImportOption) (model.Form, error) {
	if path == "" {
		return model.Form{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: read form: %w", err)
	}
	form, err := surveyjson.Decode(ctx, data, options...)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: decode form: %w", err)
	}
	return form, nil
}

// AssertExportGolden exports form and compares the bytes with the golden at
// path. With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertExportGolden(t *testing.T, path string, form model.Form) {
	t.Helper()

	got, err := surveyjson.Export(form)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGolden(t, path)
	if !bytes.Equal(want, got) {
		t.Fatalf("export mismatch for %s (-want +got):\n%s", path, CompareGolden(string(want), string(got)))
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
