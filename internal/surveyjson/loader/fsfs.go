package loader

import (
	"context"
	"io/fs"

	"github.com/m-mizutani/goerr/v2"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, goerr.New("fs path is required")
	}
	if files == nil {
		return nil, goerr.New("fs is not configured", goerr.V("name", name))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema from fs", goerr.V("name", name))
	}
	return data, nil
}
