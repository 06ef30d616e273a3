// Package schema describes where a wire schema came from. Loaders accept a
// Source and return a Document so callers never deal with file handles, HTTP
// responses or library lookups directly.
package schema

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies the origin of a wire schema.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindFS      SourceKind = "fs"
	SourceKindURL     SourceKind = "url"
	SourceKindLibrary SourceKind = "library"
)

// LibraryScheme prefixes library ids in ParseSource input ("library:kyc-form").
const LibraryScheme = "library:"

var errEmptySource = errors.New("schema: empty source")

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

func (s source) String() string { return string(s.kind) + ":" + s.location }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source naming an entry inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromLibrary returns a Source naming a saved form by id.
func SourceFromLibrary(id string) Source {
	return source{kind: SourceKindLibrary, location: strings.TrimSpace(id)}
}

// SourceFromURL returns a Source for an http(s) endpoint. It panics on
// invalid input; use ParseSource for user-supplied strings.
func SourceFromURL(raw string) Source {
	src, err := urlSource(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseSource maps user input onto a Source: http(s) URLs, "library:<id>",
// and everything else as a file path.
func ParseSource(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return nil, errEmptySource
	case strings.HasPrefix(trimmed, LibraryScheme):
		id := strings.TrimPrefix(trimmed, LibraryScheme)
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("schema: library source %q has no id", raw)
		}
		return SourceFromLibrary(id), nil
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return urlSource(trimmed)
	default:
		return SourceFromFile(trimmed), nil
	}
}

func urlSource(raw string) (Source, error) {
	if raw == "" {
		return nil, errEmptySource
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("schema: unsupported URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("schema: URL %q has no host", raw)
	}
	return source{kind: SourceKindURL, location: raw}, nil
}
