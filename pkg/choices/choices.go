// Package choices edits the ordered option list embedded in choice-bearing
// fields. Every operation returns a new Field and leaves its input untouched.
package choices

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrChoiceIndexOutOfRange reports an index outside the field's choice list.
	ErrChoiceIndexOutOfRange = errors.New("choices: index out of range")
	// ErrNotChoiceField reports an operation on a field without a choice list.
	ErrNotChoiceField = errors.New("choices: field has no choice list")
)

const valuePrefix = "option"

// Add appends a generated choice. The value is "option" followed by the new
// list length, bumped past any value already taken. Fields without a choice
// list are returned unchanged.
func Add(field model.Field) model.Field {
	if field.Choices == nil {
		return field
	}
	n := len(field.Choices) + 1
	for taken(field.Choices, valuePrefix+strconv.Itoa(n)) {
		n++
	}
	choice := model.NewChoice(n)
	out := field.Clone()
	out.Choices = append(out.Choices, choice)
	return out
}

// UpdateText sets the text of the choice at index for locale. The value is
// never touched.
func UpdateText(field model.Field, index int, locale, text string) (model.Field, error) {
	if err := checkIndex(field, index); err != nil {
		return field, err
	}
	out := field.Clone()
	out.Choices[index].Text = out.Choices[index].Text.Set(locale, text)
	return out, nil
}

// Delete removes the choice at index, shifting later entries down. A field
// may be left with an empty list.
func Delete(field model.Field, index int) (model.Field, error) {
	if err := checkIndex(field, index); err != nil {
		return field, err
	}
	out := field.Clone()
	out.Choices = append(out.Choices[:index:index], out.Choices[index+1:]...)
	return out, nil
}

// Move swaps the choice at index with its neighbour in the direction of
// delta. Only the sign of delta counts, so choices never jump past a
// neighbour. Moving past either end is a no-op.
func Move(field model.Field, index, delta int) (model.Field, error) {
	if err := checkIndex(field, index); err != nil {
		return field, err
	}
	switch {
	case delta > 0:
		delta = 1
	case delta < 0:
		delta = -1
	}
	target := index + delta
	if delta == 0 || target < 0 || target >= len(field.Choices) {
		return field, nil
	}
	out := field.Clone()
	out.Choices[index], out.Choices[target] = out.Choices[target], out.Choices[index]
	return out, nil
}

func checkIndex(field model.Field, index int) error {
	if field.Choices == nil {
		return ErrNotChoiceField
	}
	if index < 0 || index >= len(field.Choices) {
		return fmt.Errorf("%w: %d (len %d)", ErrChoiceIndexOutOfRange, index, len(field.Choices))
	}
	return nil
}

func taken(choices []model.Choice, value string) bool {
	for _, choice := range choices {
		if choice.Value == value {
			return true
		}
	}
	return false
}
