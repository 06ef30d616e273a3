package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"

	internalloader "github.com/goliatone/go-formbuilder/internal/surveyjson/loader"
	"github.com/goliatone/go-formbuilder/pkg/library"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
	"github.com/goliatone/go-formbuilder/pkg/templates"
)

const stdinSource = "-"

func (a *app) registry() (*templates.Registry, error) {
	if a.cfg.Templates.Pack == "" {
		return templates.Default(), nil
	}
	reg, err := templates.NewRegistry(templates.WithPackFS(os.DirFS(a.cfg.Templates.Pack)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load template pack", goerr.V("path", a.cfg.Templates.Pack))
	}
	return reg, nil
}

func (a *app) importOptions(strict bool) []surveyjson.ImportOption {
	if strict {
		return []surveyjson.ImportOption{surveyjson.WithStrictTypes()}
	}
	return nil
}

// openSource parses raw and builds a loader able to resolve it. The returned
// release func closes the library when one had to be opened.
func (a *app) openSource(raw string) (schema.Source, surveyjson.Loader, func(), error) {
	src, err := schema.ParseSource(raw)
	if err != nil {
		return nil, nil, nil, goerr.Wrap(err, "invalid source", goerr.V("source", raw))
	}

	release := func() {}
	var lib library.Store
	if src.Kind() == schema.SourceKindLibrary {
		lib, err = a.cfg.Library.OpenLibrary()
		if err != nil {
			return nil, nil, nil, err
		}
		release = func() { _ = lib.Close() }
	}

	timeout, err := a.cfg.Fetch.RequestTimeout()
	if err != nil {
		release()
		return nil, nil, nil, err
	}
	opts := []surveyjson.LoaderOption{
		surveyjson.WithRequestTimeout(timeout),
		surveyjson.WithCacheSize(a.cfg.Fetch.CacheSize),
	}
	if a.cfg.Fetch.AllowHTTP {
		opts = append(opts, surveyjson.WithAllowHTTP())
	}
	if lib != nil {
		opts = append(opts, surveyjson.WithLibrary(lib))
	}
	return src, internalloader.New(surveyjson.NewLoaderOptions(opts...)), release, nil
}

// readSource returns the raw bytes behind raw, reading stdin for "-".
func (a *app) readSource(ctx context.Context, raw string) ([]byte, error) {
	if raw == stdinSource {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}
	src, loader, release, err := a.openSource(raw)
	if err != nil {
		return nil, err
	}
	defer release()

	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load schema", goerr.V("source", raw))
	}
	return doc.Raw(), nil
}

// write sends data to path, or to the command output for "" and "-".
func (a *app) write(path string, data []byte) error {
	if path == "" || path == stdinSource {
		_, err := a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
	}
	return nil
}
