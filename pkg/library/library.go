// Package library stores named wire schemas so they can be listed, fetched
// by id and loaded into an editing session.
package library

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrNotFound reports an unknown form id.
	ErrNotFound = errors.New("library: form not found")
	// ErrInvalidID reports an id outside [a-z0-9._-].
	ErrInvalidID = errors.New("library: invalid form id")
	// ErrClosed reports use of a closed store.
	ErrClosed = errors.New("library: store is closed")
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,127}$`)

// Entry describes one saved form without its body.
type Entry struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Title       model.LocalizedString `json:"title"`
	Description model.LocalizedString `json:"description,omitempty"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// Store persists saved forms.
type Store interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, entry Entry, raw []byte) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// ValidID reports whether id can name a saved form.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// EntryFromSchema derives list metadata from a wire schema: the title and
// description members are copied and Name defaults to id.
func EntryFromSchema(id string, raw []byte) (Entry, error) {
	var head struct {
		Title       model.LocalizedString `json:"title"`
		Description model.LocalizedString `json:"description"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return Entry{}, goerr.Wrap(err, "failed to read schema header", goerr.V("id", id))
	}
	return Entry{ID: id, Name: id, Title: head.Title, Description: head.Description}, nil
}

// Search filters entries whose id, name or any title translation contains
// query (case-insensitive). An empty query matches everything.
func Search(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, q) {
			out = append(out, entry)
		}
	}
	return out
}

func matches(entry Entry, q string) bool {
	if strings.Contains(strings.ToLower(entry.ID), q) || strings.Contains(strings.ToLower(entry.Name), q) {
		return true
	}
	for _, text := range entry.Title {
		if strings.Contains(strings.ToLower(text), q) {
			return true
		}
	}
	return false
}

func prepare(entry Entry, raw []byte, now time.Time) (Entry, error) {
	if !ValidID(entry.ID) {
		return Entry{}, goerr.Wrap(ErrInvalidID, "cannot store form", goerr.V("id", entry.ID))
	}
	if len(raw) == 0 {
		return Entry{}, goerr.New("form body is empty", goerr.V("id", entry.ID))
	}
	if !json.Valid(raw) {
		return Entry{}, goerr.New("form body is not valid JSON", goerr.V("id", entry.ID))
	}
	if entry.Name == "" {
		entry.Name = entry.ID
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now.UTC()
	}
	entry.Title = entry.Title.Clone()
	entry.Description = entry.Description.Clone()
	return entry, nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
}
