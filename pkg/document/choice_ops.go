package document

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/choices"
)

// AddChoice appends a generated choice to the field with id on the selected
// page. Fields without a choice list are left unchanged.
func (s *Store) AddChoice(fieldID string) error {
	return s.update(func(next *State) (bool, error) {
		field := selectedField(next, fieldID)
		if field == nil {
			return false, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
		}
		if field.Choices == nil {
			return false, nil
		}
		*field = choices.Add(*field)
		return true, nil
	})
}

// UpdateChoiceText sets the text of one choice for locale.
func (s *Store) UpdateChoiceText(fieldID string, index int, locale, text string) error {
	return s.update(func(next *State) (bool, error) {
		field := selectedField(next, fieldID)
		if field == nil {
			return false, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
		}
		updated, err := choices.UpdateText(*field, index, locale, text)
		if err != nil {
			return false, err
		}
		*field = updated
		return true, nil
	})
}

// DeleteChoice removes one choice from the field with id.
func (s *Store) DeleteChoice(fieldID string, index int) error {
	return s.update(func(next *State) (bool, error) {
		field := selectedField(next, fieldID)
		if field == nil {
			return false, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
		}
		updated, err := choices.Delete(*field, index)
		if err != nil {
			return false, err
		}
		*field = updated
		return true, nil
	})
}

// MoveChoice swaps a choice with its neighbour (delta -1 or +1).
func (s *Store) MoveChoice(fieldID string, index, delta int) error {
	return s.update(func(next *State) (bool, error) {
		field := selectedField(next, fieldID)
		if field == nil {
			return false, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
		}
		updated, err := choices.Move(*field, index, delta)
		if err != nil {
			return false, err
		}
		*field = updated
		return true, nil
	})
}
