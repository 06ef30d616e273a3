package sampleforms

import (
	"context"
	"net/http"

	"github.com/goliatone/go-formbuilder/pkg/library"
)

// Component bundles a forms library with the routes that expose it.
type Component struct {
	opts Options
}

// New builds a component over the configured library. Without WithStore it
// serves the bundled samples.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the configuration the routes are served with.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Library resolves the store behind the routes, seeding the shared sample
// library on first use when none was configured.
func (c *Component) Library() (library.Store, error) {
	if c != nil && c.opts.Store != nil {
		return c.opts.Store, nil
	}
	return DefaultStore()
}

// Items returns the listing the list route would serve for query and
// locale, capped at the default limit.
func (c *Component) Items(ctx context.Context, query, locale string) ([]Item, error) {
	store, err := c.Library()
	if err != nil {
		return nil, err
	}
	entries, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := c.Options()
	return SearchItems(entries, query, opts.DefaultLimit, locale, opts), nil
}

// Handler serves the form listing and single-form routes.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// RegisterRoutes mounts the form routes under basePath and returns the
// mounted pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
