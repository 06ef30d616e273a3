// Package locale inspects the languages a form is written in and produces
// single-language views of it.
package locale

import (
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Locales lists every locale key used anywhere in form, "default" first and
// the rest sorted.
func Locales(form model.Form) []string {
	seen := map[string]struct{}{model.LocaleDefault: {}}
	collect := func(s model.LocalizedString) {
		for key := range s {
			seen[key] = struct{}{}
		}
	}

	collect(form.Title)
	collect(form.Description)
	for _, page := range form.Pages {
		collect(page.Title)
		for _, field := range page.Elements {
			collect(field.Title)
			collect(field.Placeholder)
			for _, choice := range field.Choices {
				collect(choice.Text)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for key := range seen {
		if key != model.LocaleDefault {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return append([]string{model.LocaleDefault}, out...)
}

// Missing reports, per locale, how many localized strings fall back to the
// default text because the locale entry is absent or empty.
func Missing(form model.Form, locales ...string) map[string]int {
	out := make(map[string]int, len(locales))
	for _, loc := range locales {
		if loc == model.LocaleDefault {
			continue
		}
		out[loc] = 0
	}
	count := func(s model.LocalizedString) {
		if s == nil {
			return
		}
		for loc := range out {
			if s[loc] == "" && s[model.LocaleDefault] != "" {
				out[loc]++
			}
		}
	}

	count(form.Title)
	count(form.Description)
	for _, page := range form.Pages {
		count(page.Title)
		for _, field := range page.Elements {
			count(field.Title)
			count(field.Placeholder)
			for _, choice := range field.Choices {
				count(choice.Text)
			}
		}
	}
	return out
}
