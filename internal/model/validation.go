package model

import (
	"errors"
	"fmt"
)

var (
	errNoPages          = errors.New("form: at least one page is required")
	errMissingDefault   = errors.New("missing default locale")
	errDuplicateFieldID = errors.New("duplicate field id")
	errDuplicateChoice  = errors.New("duplicate choice value")
	errChoicesMismatch  = errors.New("choices present on a non choice field")
	errRowsMismatch     = errors.New("rows present on a non multi-line field")
)

// Problem is a structural defect found in a decoded form. Path is a JSON
// pointer into the wire document.
type Problem struct {
	Path string
	Err  error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %v", p.Path, p.Err)
}

func (p Problem) Unwrap() error {
	return p.Err
}

// CheckForm reports invariant violations a hand-written or foreign document
// may carry: missing pages, missing default locale entries, duplicate field
// ids across the whole form, duplicate choice values within a field, and
// choices/rows attached to kinds that do not own them. Unknown field kinds
// are not a problem here.
func CheckForm(form Form) []Problem {
	var problems []Problem
	add := func(path string, err error) {
		problems = append(problems, Problem{Path: path, Err: err})
	}

	if !hasDefault(form.Title) {
		add("/title", errMissingDefault)
	}
	if form.Description != nil && !hasDefault(form.Description) {
		add("/description", errMissingDefault)
	}
	if len(form.Pages) == 0 {
		add("/pages", errNoPages)
	}

	seen := make(map[string]string)
	for p, page := range form.Pages {
		pagePath := fmt.Sprintf("/pages/%d", p)
		if page.Title != nil && !hasDefault(page.Title) {
			add(pagePath+"/title", errMissingDefault)
		}
		for e, field := range page.Elements {
			fieldPath := fmt.Sprintf("%s/elements/%d", pagePath, e)
			if field.ID != "" {
				if first, dup := seen[field.ID]; dup {
					add(fieldPath+"/id", fmt.Errorf("%w %q (first at %s)", errDuplicateFieldID, field.ID, first))
				} else {
					seen[field.ID] = fieldPath
				}
			}
			if !hasDefault(field.Title) {
				add(fieldPath+"/title", errMissingDefault)
			}
			if field.Placeholder != nil && !hasDefault(field.Placeholder) {
				add(fieldPath+"/placeholder", errMissingDefault)
			}
			if field.Type.Known() {
				if field.Choices != nil && !field.Type.ChoiceBearing() {
					add(fieldPath+"/choices", errChoicesMismatch)
				}
				if field.Rows != nil && !field.Type.Multiline() {
					add(fieldPath+"/rows", errRowsMismatch)
				}
			}
			values := make(map[string]struct{}, len(field.Choices))
			for c, choice := range field.Choices {
				choicePath := fmt.Sprintf("%s/choices/%d", fieldPath, c)
				if _, dup := values[choice.Value]; dup {
					add(choicePath+"/value", fmt.Errorf("%w %q", errDuplicateChoice, choice.Value))
				}
				values[choice.Value] = struct{}{}
				if !hasDefault(choice.Text) {
					add(choicePath+"/text", errMissingDefault)
				}
			}
		}
	}
	return problems
}

func hasDefault(s LocalizedString) bool {
	_, ok := s[LocaleDefault]
	return ok
}
