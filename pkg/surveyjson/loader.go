package surveyjson

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Loader fetches raw wire schemas from files, an fs.FS, URLs or the forms
// library. Implementations live under internal/surveyjson.
type Loader interface {
	Load(ctx context.Context, src schema.Source) (schema.Document, error)
}

// LibraryReader is the slice of the forms library a Loader needs.
type LibraryReader interface {
	Get(ctx context.Context, id string) ([]byte, error)
}

// DefaultCacheSize bounds the remote response cache when caching is enabled
// without an explicit size.
const DefaultCacheSize = 32

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS

	// HTTPClient is used for URL sources. Nil disables them unless
	// AllowHTTP is set.
	HTTPClient *http.Client

	// AllowHTTP enables URL sources with a default client.
	AllowHTTP bool

	// RequestTimeout caps each remote fetch.
	RequestTimeout time.Duration

	// CacheSize is the number of URL responses kept in memory. Zero disables
	// the cache.
	CacheSize int

	// Library resolves SourceKindLibrary ids.
	Library LibraryReader
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS for SourceKindFS lookups.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote schemas.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithAllowHTTP enables URL sources using a default client.
func WithAllowHTTP() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTP = true
	}
}

// WithRequestTimeout caps remote fetch durations.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		if timeout > 0 {
			opts.RequestTimeout = timeout
		}
	}
}

// WithCacheSize keeps up to size remote responses in an LRU cache. A
// negative size falls back to DefaultCacheSize.
func WithCacheSize(size int) LoaderOption {
	return func(opts *LoaderOptions) {
		if size < 0 {
			size = DefaultCacheSize
		}
		opts.CacheSize = size
	}
}

// WithLibrary resolves "library:<id>" sources against lib.
func WithLibrary(lib LibraryReader) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Library = lib
	}
}

// NewLoaderOptions applies options and returns the resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Construction helpers live in the top-level formbuilder package to prevent
// import cycles.
