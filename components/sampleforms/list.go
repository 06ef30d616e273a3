package sampleforms

import (
	"context"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/library"
)

var (
	defaultOnce  sync.Once
	defaultStore library.Store
	defaultErr   error
)

// DefaultStore returns a process-wide in-memory library holding the bundled
// samples.
func DefaultStore() (library.Store, error) {
	defaultOnce.Do(func() {
		store := library.NewMemory()
		if _, err := library.Seed(context.Background(), store); err != nil {
			defaultErr = err
			return
		}
		defaultStore = store
	})
	return defaultStore, defaultErr
}
