package library

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	meta   map[string]Entry
	bodies map[string][]byte
	closed bool
	now    func() time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		meta:   make(map[string]Entry),
		bodies: make(map[string][]byte),
		now:    time.Now,
	}
}

// List returns every entry sorted by id.
func (m *Memory) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]Entry, 0, len(m.meta))
	for _, entry := range m.meta {
		out = append(out, entry)
	}
	sortEntries(out)
	return out, nil
}

// Get returns a copy of the stored schema.
func (m *Memory) Get(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	raw, ok := m.bodies[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "form not in memory", goerr.V("id", id))
	}
	return append([]byte(nil), raw...), nil
}

// Put inserts or replaces a form.
func (m *Memory) Put(ctx context.Context, entry Entry, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prepared, err := prepare(entry, raw, m.now())
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.meta[prepared.ID] = prepared
	m.bodies[prepared.ID] = append([]byte(nil), raw...)
	return nil
}

// Delete removes a form. Deleting an unknown id reports ErrNotFound.
func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if _, ok := m.meta[id]; !ok {
		return goerr.Wrap(ErrNotFound, "form not in memory", goerr.V("id", id))
	}
	delete(m.meta, id)
	delete(m.bodies, id)
	return nil
}

// Close marks the store closed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
