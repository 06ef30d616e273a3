package sampleforms

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/library"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type listResponse struct {
	Data []Item `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
// Request paths are resolved relative to the route path, so the handler can
// be mounted directly or under a base path via RegisterRoutes.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	prefix := opts.prefix
	if prefix == "" {
		prefix = mountPath("", opts.RoutePath)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		store := opts.Store
		if store == nil {
			loaded, err := DefaultStore()
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			store = loaded
		}

		id, ok := formID(r.URL.Path, prefix)
		if !ok {
			http.NotFound(w, r)
			return
		}
		if id == "" {
			serveList(w, r, store, opts)
			return
		}
		serveForm(w, r, store, id)
	})
}

func serveList(w http.ResponseWriter, r *http.Request, store library.Store, opts Options) {
	entries, err := store.List(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	results := SearchItems(entries, q.Get(opts.SearchParam), parseInt(q.Get(opts.LimitParam)), q.Get(opts.LocaleParam), opts)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(listResponse{Data: results})
}

func serveForm(w http.ResponseWriter, r *http.Request, store library.Store, id string) {
	raw, err := store.Get(r.Context(), id)
	if errors.Is(err, library.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(raw)
}

// formID splits a request path into the trailing form id. An empty id means
// the list route; ok is false for paths outside prefix or nested deeper
// than one segment.
func formID(path, prefix string) (string, bool) {
	rest, found := strings.CutPrefix(path, prefix)
	if !found {
		return "", false
	}
	if rest != "" && !strings.HasPrefix(rest, "/") && !strings.HasSuffix(prefix, "/") {
		return "", false
	}
	rest = strings.Trim(rest, "/")
	if strings.Contains(rest, "/") {
		return "", false
	}
	rest = strings.TrimSuffix(rest, ".json")
	return rest, true
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
