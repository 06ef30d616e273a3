// Package formbuilder is the quick-start entry point: it wires the default
// loader, template registry and document store behind a few helpers.
package formbuilder

import (
	"context"

	internalloader "github.com/goliatone/go-formbuilder/internal/surveyjson/loader"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

// Form aliases the document root for callers that only import this package.
type Form = model.Form

// Source aliases schema.Source.
type Source = schema.Source

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...surveyjson.LoaderOption) surveyjson.Loader {
	cfg := surveyjson.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewStore returns a document store holding the initial form.
func NewStore(options ...document.Option) *document.Store {
	return document.New(options...)
}

// Export serialises form to indented wire JSON.
func Export(form Form) ([]byte, error) {
	return surveyjson.Export(form)
}

// Import decodes raw into a form without touching any store.
func Import(ctx context.Context, raw []byte, options ...surveyjson.ImportOption) (Form, error) {
	return surveyjson.Decode(ctx, raw, options...)
}

// LoadForm fetches src with a default loader (plus options) and decodes it.
func LoadForm(ctx context.Context, src Source, options ...surveyjson.LoaderOption) (Form, error) {
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return Form{}, err
	}
	return surveyjson.Decode(ctx, doc.Raw())
}
