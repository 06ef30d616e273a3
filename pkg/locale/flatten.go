package locale

import "github.com/goliatone/go-formbuilder/pkg/model"

// FlatForm is a form resolved to a single locale.
type FlatForm struct {
	Locale      string     `json:"locale"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Pages       []FlatPage `json:"pages"`
}

// FlatPage is a page resolved to a single locale.
type FlatPage struct {
	Name     string      `json:"name"`
	Title    string      `json:"title,omitempty"`
	Elements []FlatField `json:"elements"`
}

// FlatField is a field resolved to a single locale.
type FlatField struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        model.FieldType `json:"type"`
	Title       string          `json:"title"`
	Placeholder string          `json:"placeholder,omitempty"`
	IsRequired  bool            `json:"isRequired"`
	Choices     []FlatChoice    `json:"choices,omitempty"`
	Rows        int             `json:"rows,omitempty"`
}

// FlatChoice is a choice resolved to a single locale.
type FlatChoice struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Flatten resolves every localized string in form for loc, falling back to
// the default text.
func Flatten(form model.Form, loc string) FlatForm {
	out := FlatForm{
		Locale:      loc,
		Title:       form.Title.Get(loc),
		Description: form.Description.Get(loc),
		Pages:       make([]FlatPage, 0, len(form.Pages)),
	}
	for _, page := range form.Pages {
		flat := FlatPage{
			Name:     page.Name,
			Title:    page.Title.Get(loc),
			Elements: make([]FlatField, 0, len(page.Elements)),
		}
		for _, field := range page.Elements {
			flat.Elements = append(flat.Elements, flattenField(field, loc))
		}
		out.Pages = append(out.Pages, flat)
	}
	return out
}

func flattenField(field model.Field, loc string) FlatField {
	out := FlatField{
		ID:          field.ID,
		Name:        field.Name,
		Type:        field.Type,
		Title:       field.Title.Get(loc),
		Placeholder: field.Placeholder.Get(loc),
		IsRequired:  field.IsRequired,
	}
	if field.Rows != nil {
		out.Rows = *field.Rows
	}
	for _, choice := range field.Choices {
		out.Choices = append(out.Choices, FlatChoice{Value: choice.Value, Text: choice.Text.Get(loc)})
	}
	return out
}
