package library

import (
	"context"
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed samples/*.json
var samples embed.FS

// Samples exposes the bundled sample schemas, one "<id>.json" file each.
func Samples() fs.FS {
	sub, err := fs.Sub(samples, "samples")
	if err != nil {
		panic(err)
	}
	return sub
}

// Seed installs the bundled samples into store, replacing forms with the
// same ids. It returns the ids written.
func Seed(ctx context.Context, store Store) ([]string, error) {
	files, err := fs.ReadDir(Samples(), ".")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list samples")
	}
	var ids []string
	for _, file := range files {
		if file.IsDir() || path.Ext(file.Name()) != ".json" {
			continue
		}
		id := strings.TrimSuffix(file.Name(), ".json")
		raw, err := fs.ReadFile(Samples(), file.Name())
		if err != nil {
			return ids, goerr.Wrap(err, "failed to read sample", goerr.V("id", id))
		}
		entry, err := EntryFromSchema(id, raw)
		if err != nil {
			return ids, err
		}
		if err := store.Put(ctx, entry, raw); err != nil {
			return ids, goerr.Wrap(err, "failed to seed sample", goerr.V("id", id))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
