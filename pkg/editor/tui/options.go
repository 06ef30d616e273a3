package tui

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

// Theme captures optional prefixes the editor applies to messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithLocales sets the locales offered when editing translatable text. The
// default locale is always offered first.
func WithLocales(locales ...string) Option {
	return func(e *Editor) {
		out := []string{model.LocaleDefault}
		for _, loc := range locales {
			if loc == "" || loc == model.LocaleDefault || contains(out, loc) {
				continue
			}
			out = append(out, loc)
		}
		e.locales = out
	}
}

// WithDisplayLocale picks the locale used for menu labels.
func WithDisplayLocale(locale string) Option {
	return func(e *Editor) {
		if locale != "" {
			e.displayLocale = locale
		}
	}
}

// WithImportOptions tunes how pasted JSON is imported.
func WithImportOptions(opts ...surveyjson.ImportOption) Option {
	return func(e *Editor) {
		e.importOpts = append(e.importOpts, opts...)
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
