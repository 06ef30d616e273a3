package model

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"
)

const (
	// LocaleDefault is the fallback key every localized string carries.
	LocaleDefault = "default"
	// LocaleVietnamese is the secondary locale seeded by built-in templates.
	LocaleVietnamese = "vi"
)

// LocalizedString maps locale codes to text. Lookups fall back to the
// "default" entry when the requested locale is missing or empty.
type LocalizedString map[string]string

// NewLocalizedString builds a string with the default text and optional
// locale/text pairs. A trailing odd element is ignored.
func NewLocalizedString(defaultText string, pairs ...string) LocalizedString {
	out := LocalizedString{LocaleDefault: defaultText}
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}

// Get returns the text for locale, falling back to "default" and finally to
// the empty string.
func (s LocalizedString) Get(locale string) string {
	if s == nil {
		return ""
	}
	if value := s[locale]; value != "" {
		return value
	}
	return s[LocaleDefault]
}

// Set returns a copy with locale updated. The receiver is never mutated and
// the result always carries a "default" entry.
func (s LocalizedString) Set(locale, value string) LocalizedString {
	out := make(LocalizedString, len(s)+1)
	for key, text := range s {
		out[key] = text
	}
	out[locale] = value
	if _, ok := out[LocaleDefault]; !ok {
		out[LocaleDefault] = ""
	}
	return out
}

// Clone returns an independent copy. Nil stays nil.
func (s LocalizedString) Clone() LocalizedString {
	if s == nil {
		return nil
	}
	out := make(LocalizedString, len(s))
	for key, text := range s {
		out[key] = text
	}
	return out
}

// Locales returns the keys present, "default" first and the rest sorted.
func (s LocalizedString) Locales() []string {
	if len(s) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s))
	for key := range s {
		if key == LocaleDefault {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if _, ok := s[LocaleDefault]; ok {
		keys = append([]string{LocaleDefault}, keys...)
	}
	return keys
}

// MarshalJSON writes "default" first so exported documents read naturally.
func (s LocalizedString) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, key := range s.Locales() {
		if idx > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
