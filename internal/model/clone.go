package model

// Clone returns a deep copy of the choice.
func (c Choice) Clone() Choice {
	return Choice{Value: c.Value, Text: c.Text.Clone()}
}

// Clone returns a deep copy of the field. Extra values are treated as
// immutable and copied by reference.
func (f Field) Clone() Field {
	out := f
	out.Title = f.Title.Clone()
	out.Placeholder = f.Placeholder.Clone()
	out.Choices = CloneChoices(f.Choices)
	if f.Rows != nil {
		rows := *f.Rows
		out.Rows = &rows
	}
	out.Extra = cloneExtra(f.Extra)
	return out
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := Page{
		Name:  p.Name,
		Title: p.Title.Clone(),
		Extra: cloneExtra(p.Extra),
	}
	if p.Elements != nil {
		out.Elements = make([]Field, len(p.Elements))
		for idx, field := range p.Elements {
			out.Elements[idx] = field.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	out := Form{
		Title:       f.Title.Clone(),
		Description: f.Description.Clone(),
		Extra:       cloneExtra(f.Extra),
	}
	if f.Pages != nil {
		out.Pages = make([]Page, len(f.Pages))
		for idx, page := range f.Pages {
			out.Pages[idx] = page.Clone()
		}
	}
	return out
}

// CloneChoices copies a choice list, preserving nil versus empty.
func CloneChoices(choices []Choice) []Choice {
	if choices == nil {
		return nil
	}
	out := make([]Choice, len(choices))
	for idx, choice := range choices {
		out[idx] = choice.Clone()
	}
	return out
}

func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return nil
	}
	out := make(map[string]any, len(extra))
	for key, value := range extra {
		out[key] = value
	}
	return out
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
