package sampleforms

import (
	"time"

	"github.com/goliatone/go-formbuilder/pkg/library"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Item is one list result. Value/Label mirror the option shape used by
// remote select widgets; the remaining members carry the full metadata.
type Item struct {
	Value       string                `json:"value"`
	Label       string                `json:"label"`
	Title       model.LocalizedString `json:"title"`
	Description model.LocalizedString `json:"description,omitempty"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// SearchItems filters entries by query, clamps to limit and renders labels
// in locale.
func SearchItems(entries []library.Entry, query string, limit int, locale string, opts Options) []Item {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return []Item{}
	}
	matched := library.Search(entries, query)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	locale = localeOrDefault(locale)
	out := make([]Item, 0, len(matched))
	for _, entry := range matched {
		label := entry.Title.Get(locale)
		if label == "" {
			label = entry.Name
		}
		out = append(out, Item{
			Value:       entry.ID,
			Label:       label,
			Title:       entry.Title,
			Description: entry.Description,
			UpdatedAt:   entry.UpdatedAt,
		})
	}
	return out
}
