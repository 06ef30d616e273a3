package surveyjson

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedJSON reports input that is not valid JSON. The store is
	// never touched when it is returned.
	ErrMalformedJSON = errors.New("surveyjson: malformed JSON")
	// ErrNilStore reports an Import without a destination store.
	ErrNilStore = errors.New("surveyjson: store is nil")
)

// SyntaxError carries the byte offset of a JSON parse failure. It matches
// ErrMalformedJSON under errors.Is.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s at offset %d: %v", ErrMalformedJSON, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrMalformedJSON, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedJSON.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedJSON
}
