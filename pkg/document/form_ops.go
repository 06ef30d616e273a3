package document

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// SetTitle updates the form title for locale.
func (s *Store) SetTitle(locale, value string) {
	_ = s.update(func(next *State) (bool, error) {
		next.Form.Title = next.Form.Title.Set(locale, value)
		return true, nil
	})
}

// SetDescription updates the form description for locale.
func (s *Store) SetDescription(locale, value string) {
	_ = s.update(func(next *State) (bool, error) {
		next.Form.Description = next.Form.Description.Set(locale, value)
		return true, nil
	})
}

// SetSelectedPage selects the page at index and clears the field selection.
func (s *Store) SetSelectedPage(index int) error {
	return s.update(func(next *State) (bool, error) {
		if err := checkPageIndex(next.Form, index); err != nil {
			return false, err
		}
		next.SelectedPageIndex = index
		next.SelectedFieldID = ""
		return true, nil
	})
}

// AddPage appends an auto-numbered page and selects it.
func (s *Store) AddPage() {
	_ = s.update(func(next *State) (bool, error) {
		n := len(next.Form.Pages) + 1
		page := model.NewPage(n)
		page.Name = uniquePageName(next.Form.Pages, n)
		next.Form.Pages = append(next.Form.Pages, page)
		next.SelectedPageIndex = len(next.Form.Pages) - 1
		next.SelectedFieldID = ""
		return true, nil
	})
}

// DeletePage removes the page at index. Deleting the only page is a no-op.
// The selection moves to min(index, len-1) and the field selection clears.
func (s *Store) DeletePage(index int) error {
	return s.update(func(next *State) (bool, error) {
		if len(next.Form.Pages) <= 1 {
			return false, nil
		}
		if err := checkPageIndex(next.Form, index); err != nil {
			return false, err
		}
		pages := make([]model.Page, 0, len(next.Form.Pages)-1)
		pages = append(pages, next.Form.Pages[:index]...)
		pages = append(pages, next.Form.Pages[index+1:]...)
		next.Form.Pages = pages
		next.SelectedPageIndex = min(index, len(pages)-1)
		next.SelectedFieldID = ""
		return true, nil
	})
}

// UpdatePageTitle sets the title of the page at index for locale.
func (s *Store) UpdatePageTitle(index int, locale, value string) error {
	return s.update(func(next *State) (bool, error) {
		if err := checkPageIndex(next.Form, index); err != nil {
			return false, err
		}
		page := &next.Form.Pages[index]
		page.Title = page.Title.Set(locale, value)
		return true, nil
	})
}

// ResetForm replaces the document with a new single-page form.
func (s *Store) ResetForm() {
	_ = s.update(func(next *State) (bool, error) {
		*next = State{Form: model.NewForm()}
		return true, nil
	})
}

// LoadForm replaces the document with form as-is and selects page 0. No shape
// checks happen here; callers importing foreign data validate first.
func (s *Store) LoadForm(form model.Form) {
	_ = s.update(func(next *State) (bool, error) {
		*next = State{Form: form.Clone()}
		return true, nil
	})
}

func checkPageIndex(form model.Form, index int) error {
	if index < 0 || index >= len(form.Pages) {
		return fmt.Errorf("%w: %d (len %d)", ErrPageIndexOutOfRange, index, len(form.Pages))
	}
	return nil
}

// uniquePageName returns "pageN", bumping N past names already in use so
// page names stay distinct after deletions.
func uniquePageName(pages []model.Page, n int) string {
	used := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		used[page.Name] = struct{}{}
	}
	for {
		name := model.NewPage(n).Name
		if _, taken := used[name]; !taken {
			return name
		}
		n++
	}
}
