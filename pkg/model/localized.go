package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// NewLocalizedString builds a localized string from default text plus
// locale/text pairs.
func NewLocalizedString(defaultText string, pairs ...string) LocalizedString {
	return internalmodel.NewLocalizedString(defaultText, pairs...)
}

// Get resolves str for locale with "default" fallback.
func Get(str LocalizedString, locale string) string {
	return str.Get(locale)
}

// Set returns a copy of str with locale updated.
func Set(str LocalizedString, locale, value string) LocalizedString {
	return str.Set(locale, value)
}

// Labelize turns a type tag or machine name into a readable label.
func Labelize(name string) string {
	return internalmodel.DefaultLabeler(name)
}
