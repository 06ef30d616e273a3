package loader

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

// Loader implements surveyjson.Loader by delegating to file, fs.FS, HTTP or
// library strategies. Successful URL responses are cached when a cache size
// is configured.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	library   surveyjson.LibraryReader
	cache     *lru.Cache[string, []byte]
}

var _ surveyjson.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options surveyjson.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	l := &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		library:   options.Library,
	}
	if options.CacheSize > 0 {
		// lru.New only fails on a non-positive size.
		l.cache, _ = lru.New[string, []byte](options.CacheSize)
	}
	return l
}

// Load fetches a document from src.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, goerr.New("source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if !l.allowHTTP {
			return schema.Document{}, goerr.New("http support disabled", goerr.V("url", src.Location()))
		}
		data, err = l.loadURL(ctx, src.Location())
	case schema.SourceKindLibrary:
		if l.library == nil {
			return schema.Document{}, goerr.New("library is not configured", goerr.V("id", src.Location()))
		}
		data, err = l.library.Get(ctx, src.Location())
		if err != nil {
			err = goerr.Wrap(err, "failed to load form from library", goerr.V("id", src.Location()))
		}
	default:
		err = goerr.New("unsupported source kind", goerr.V("kind", src.Kind()))
	}
	if err != nil {
		return schema.Document{}, err
	}

	return schema.NewDocument(src, data)
}

// Purge drops every cached response.
func (l *Loader) Purge() {
	if l.cache != nil {
		l.cache.Purge()
	}
}

func (l *Loader) loadURL(ctx context.Context, url string) ([]byte, error) {
	if l.cache != nil {
		if data, ok := l.cache.Get(url); ok {
			return append([]byte(nil), data...), nil
		}
	}
	data, err := loadHTTP(ctx, l.http, url, l.timeout)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		l.cache.Add(url, append([]byte(nil), data...))
	}
	return data, nil
}
