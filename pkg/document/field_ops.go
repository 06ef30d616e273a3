package document

import (
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/templates"
)

// FieldUpdate is a partial update merged into a field. Nil members are left
// unchanged; set ClearPlaceholder to drop the placeholder. Id and type are
// fixed for a field's lifetime. Choices only apply to choice-bearing kinds
// and Rows only to multi-line kinds; unknown kinds accept both.
type FieldUpdate struct {
	Name             *string
	Title            model.LocalizedString
	Placeholder      model.LocalizedString
	ClearPlaceholder bool
	IsRequired       *bool
	Choices          []model.Choice
	Rows             *int
}

func (u FieldUpdate) apply(field *model.Field) {
	if u.Name != nil {
		field.Name = *u.Name
	}
	if u.Title != nil {
		field.Title = u.Title.Clone()
	}
	switch {
	case u.ClearPlaceholder:
		field.Placeholder = nil
	case u.Placeholder != nil:
		field.Placeholder = u.Placeholder.Clone()
	}
	if u.IsRequired != nil {
		field.IsRequired = *u.IsRequired
	}
	known := field.Type.Known()
	if u.Choices != nil && (!known || field.Type.ChoiceBearing()) {
		field.Choices = model.CloneChoices(u.Choices)
	}
	if u.Rows != nil && (!known || field.Type.Multiline()) {
		rows := *u.Rows
		field.Rows = &rows
	}
}

// AddField appends field to the selected page and returns its id. A missing
// id, or one already used elsewhere in the form, is replaced by a fresh one.
// The new field is not selected. It returns "" only when the form has no
// pages.
func (s *Store) AddField(field model.Field) string {
	var id string
	_ = s.update(func(next *State) (bool, error) {
		page := selectedPage(next)
		if page == nil {
			return false, nil
		}
		added := field.Clone()
		if added.ID == "" || containsFieldID(next.Form, added.ID) {
			added.ID = s.freshID(next.Form)
		}
		page.Elements = append(page.Elements, added)
		id = added.ID
		return true, nil
	})
	return id
}

// AddFieldOfType instantiates the registry template for kind and appends it
// to the selected page. Unknown kinds leave the store untouched.
func (s *Store) AddFieldOfType(kind model.FieldType) (model.Field, error) {
	field, err := templates.NewField(s.registry, kind)
	if err != nil {
		return model.Field{}, err
	}
	id := s.AddField(field)
	if id == "" {
		return model.Field{}, ErrNoPage
	}
	field.ID = id
	return field, nil
}

// UpdateField merges update into the field with id on the selected page. It
// reports false, changing nothing, when the id is not on that page.
func (s *Store) UpdateField(id string, update FieldUpdate) bool {
	var found bool
	_ = s.update(func(next *State) (bool, error) {
		field := selectedField(next, id)
		if field == nil {
			return false, nil
		}
		update.apply(field)
		found = true
		return true, nil
	})
	return found
}

// DeleteField removes the field with id from the selected page, clearing the
// selection when it pointed at that field.
func (s *Store) DeleteField(id string) bool {
	var found bool
	_ = s.update(func(next *State) (bool, error) {
		page := selectedPage(next)
		if page == nil {
			return false, nil
		}
		idx := page.IndexOf(id)
		if idx < 0 {
			return false, nil
		}
		elements := make([]model.Field, 0, len(page.Elements)-1)
		elements = append(elements, page.Elements[:idx]...)
		elements = append(elements, page.Elements[idx+1:]...)
		page.Elements = elements
		if next.SelectedFieldID == id {
			next.SelectedFieldID = ""
		}
		found = true
		return true, nil
	})
	return found
}

// MoveFieldUp swaps the field with its predecessor. The first field stays put.
func (s *Store) MoveFieldUp(id string) bool {
	return s.moveField(id, -1)
}

// MoveFieldDown swaps the field with its successor. The last field stays put.
func (s *Store) MoveFieldDown(id string) bool {
	return s.moveField(id, +1)
}

func (s *Store) moveField(id string, delta int) bool {
	var moved bool
	_ = s.update(func(next *State) (bool, error) {
		page := selectedPage(next)
		if page == nil {
			return false, nil
		}
		idx := page.IndexOf(id)
		target := idx + delta
		if idx < 0 || target < 0 || target >= len(page.Elements) {
			return false, nil
		}
		elements := make([]model.Field, len(page.Elements))
		copy(elements, page.Elements)
		elements[idx], elements[target] = elements[target], elements[idx]
		page.Elements = elements
		moved = true
		return true, nil
	})
	return moved
}

// SetSelectedField records id as the selected field. Membership on the
// selected page is not checked; CurrentField reports false when it does not
// resolve.
func (s *Store) SetSelectedField(id string) {
	_ = s.update(func(next *State) (bool, error) {
		if next.SelectedFieldID == id {
			return false, nil
		}
		next.SelectedFieldID = id
		return true, nil
	})
}

// ClearFieldSelection drops the selected field.
func (s *Store) ClearFieldSelection() {
	s.SetSelectedField("")
}

func (s *Store) freshID(form model.Form) string {
	for {
		id := s.newID()
		if id != "" && !containsFieldID(form, id) {
			return id
		}
	}
}

func selectedPage(st *State) *model.Page {
	if st.SelectedPageIndex < 0 || st.SelectedPageIndex >= len(st.Form.Pages) {
		return nil
	}
	return &st.Form.Pages[st.SelectedPageIndex]
}

func selectedField(st *State, id string) *model.Field {
	page := selectedPage(st)
	if page == nil || id == "" {
		return nil
	}
	idx := page.IndexOf(id)
	if idx < 0 {
		return nil
	}
	return &page.Elements[idx]
}

func containsFieldID(form model.Form, id string) bool {
	for _, page := range form.Pages {
		if page.IndexOf(id) >= 0 {
			return true
		}
	}
	return false
}
