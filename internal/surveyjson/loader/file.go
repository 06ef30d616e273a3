package loader

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, goerr.New("file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve path", goerr.V("path", path))
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("path", abs))
	}
	return data, nil
}
