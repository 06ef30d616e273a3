// Package config holds the command line configuration: flags shared by
// several commands and the optional TOML file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-formbuilder/pkg/library"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	DefaultLibraryPath  = "formbuilder.db"
	DefaultServerAddr   = "127.0.0.1:8080"
	DefaultFetchTimeout = 10 * time.Second
)

// AppConfig is the TOML configuration file.
type AppConfig struct {
	Locales   []string        `toml:"locales"`
	Library   LibraryConfig   `toml:"library"`
	Server    ServerConfig    `toml:"server"`
	Templates TemplatesConfig `toml:"templates"`
	Fetch     FetchConfig     `toml:"fetch"`
}

// LibraryConfig locates the saved-forms database.
type LibraryConfig struct {
	Path string `toml:"path"`
	// Memory keeps the library in process; nothing is written to disk.
	Memory bool `toml:"memory"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	BasePath string `toml:"base_path"`
}

// TemplatesConfig points at an optional directory of field template packs.
type TemplatesConfig struct {
	Pack string `toml:"pack"`
}

// FetchConfig tunes URL loading.
type FetchConfig struct {
	Timeout   string `toml:"timeout"`
	AllowHTTP bool   `toml:"allow_http"`
	CacheSize int    `toml:"cache_size"`
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	return &AppConfig{
		Locales: []string{model.LocaleDefault, model.LocaleVietnamese},
		Library: LibraryConfig{Path: DefaultLibraryPath},
		Server:  ServerConfig{Addr: DefaultServerAddr},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("path", path))
	}
	return cfg, nil
}

// Validate checks field formats and fills blanks with defaults.
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	locales := make([]string, 0, len(a.Locales)+1)
	for _, loc := range append([]string{model.LocaleDefault}, a.Locales...) {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			return goerr.New("locale must not be empty")
		}
		if seen[loc] {
			continue
		}
		seen[loc] = true
		locales = append(locales, loc)
	}
	a.Locales = locales

	if a.Library.Path == "" {
		a.Library.Path = DefaultLibraryPath
	}
	if a.Server.Addr == "" {
		a.Server.Addr = DefaultServerAddr
	}
	if _, err := a.Fetch.RequestTimeout(); err != nil {
		return err
	}
	if a.Fetch.CacheSize < 0 {
		return goerr.New("fetch cache size must not be negative", goerr.V("cache_size", a.Fetch.CacheSize))
	}
	return nil
}

// RequestTimeout parses the timeout, defaulting to DefaultFetchTimeout.
func (f FetchConfig) RequestTimeout() (time.Duration, error) {
	if f.Timeout == "" {
		return DefaultFetchTimeout, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid fetch timeout", goerr.V("timeout", f.Timeout))
	}
	if d <= 0 {
		return 0, goerr.New("fetch timeout must be positive", goerr.V("timeout", f.Timeout))
	}
	return d, nil
}

// OpenLibrary opens the configured saved-forms store.
func (l LibraryConfig) OpenLibrary() (library.Store, error) {
	if l.Memory {
		return library.NewMemory(), nil
	}
	path := l.Path
	if path == "" {
		path = DefaultLibraryPath
	}
	return library.OpenBolt(path)
}
