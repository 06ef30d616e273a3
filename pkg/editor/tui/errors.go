package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilStore is returned when the editor is built without a store.
	ErrNilStore = errors.New("tui: document store is nil")
)
