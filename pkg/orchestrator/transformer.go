package orchestrator

import (
	"context"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Transformer rewrites an imported form before it replaces the document.
type Transformer interface {
	Transform(ctx context.Context, form *model.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, form *model.Form) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, form); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureLocales adds an empty entry for each locale to every localized string
// that lacks one, so editors can list every translation slot.
func EnsureLocales(locales ...string) Transformer {
	return TransformerFunc(func(_ context.Context, form *model.Form) error {
		fill := func(s model.LocalizedString) model.LocalizedString {
			if s == nil {
				return nil
			}
			for _, loc := range locales {
				loc = strings.TrimSpace(loc)
				if loc == "" {
					continue
				}
				if _, ok := s[loc]; !ok {
					s = s.Set(loc, "")
				}
			}
			return s
		}

		form.Title = fill(form.Title)
		form.Description = fill(form.Description)
		for p := range form.Pages {
			page := &form.Pages[p]
			page.Title = fill(page.Title)
			for f := range page.Elements {
				field := &page.Elements[f]
				field.Title = fill(field.Title)
				field.Placeholder = fill(field.Placeholder)
				for c := range field.Choices {
					field.Choices[c].Text = fill(field.Choices[c].Text)
				}
			}
		}
		return nil
	})
}

// FillMissingIDs assigns generated ids to fields imported without one.
func FillMissingIDs(newID func() string) Transformer {
	return TransformerFunc(func(_ context.Context, form *model.Form) error {
		for p := range form.Pages {
			for f := range form.Pages[p].Elements {
				field := &form.Pages[p].Elements[f]
				if field.ID == "" {
					field.ID = newID()
				}
			}
		}
		return nil
	})
}
