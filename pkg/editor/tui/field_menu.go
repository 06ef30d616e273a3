package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Field menu entries.
const (
	FieldTitle       = "Title"
	FieldPlaceholder = "Placeholder"
	FieldRequired    = "Toggle required"
	FieldRows        = "Rows"
	FieldAddChoice   = "Add choice"
	FieldEditChoice  = "Edit choice"
	FieldDropChoice  = "Delete choice"
	FieldChoiceUp    = "Move choice up"
	FieldChoiceDown  = "Move choice down"
	FieldMoveUp      = "Move field up"
	FieldMoveDown    = "Move field down"
	FieldDelete      = "Delete field"
	FieldBack        = "Back"
)

// fieldMenu edits the selected field until the user goes back or deletes
// it. Field selection is cleared on exit.
func (e *Editor) fieldMenu(ctx context.Context) error {
	defer e.store.ClearFieldSelection()
	for {
		field, ok := e.store.CurrentField()
		if !ok {
			return nil
		}
		actions := e.fieldActions(field)
		idx, err := e.choose(ctx, e.fieldLabel(field), actions)
		if err != nil {
			return err
		}
		done, err := actions[idx].run(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (e *Editor) fieldActions(field model.Field) []action {
	id := field.ID
	required := "no"
	if field.IsRequired {
		required = "yes"
	}
	actions := []action{
		{FieldTitle, func(ctx context.Context) (bool, error) {
			return false, e.editLocalized(ctx, "Field title", field.Title, func(locale, value string) {
				e.store.UpdateField(id, document.FieldUpdate{Title: field.Title.Set(locale, value)})
			})
		}},
		{FieldPlaceholder, func(ctx context.Context) (bool, error) {
			return false, e.editLocalized(ctx, "Placeholder", field.Placeholder, func(locale, value string) {
				e.store.UpdateField(id, document.FieldUpdate{Placeholder: field.Placeholder.Set(locale, value)})
			})
		}},
		{fmt.Sprintf("%s (%s)", FieldRequired, required), func(context.Context) (bool, error) {
			flipped := !field.IsRequired
			e.store.UpdateField(id, document.FieldUpdate{IsRequired: &flipped})
			return false, nil
		}},
	}
	if field.Type.Multiline() {
		actions = append(actions, action{FieldRows, func(ctx context.Context) (bool, error) {
			return false, e.editRows(ctx, field)
		}})
	}
	if field.Type.ChoiceBearing() {
		actions = append(actions, action{FieldAddChoice, func(ctx context.Context) (bool, error) {
			return false, e.report(ctx, e.store.AddChoice(id))
		}})
		if len(field.Choices) > 0 {
			actions = append(actions,
				action{FieldEditChoice, func(ctx context.Context) (bool, error) {
					return false, e.editChoice(ctx, field)
				}},
				action{FieldDropChoice, func(ctx context.Context) (bool, error) {
					return false, e.withChoice(ctx, field, func(i int) error { return e.store.DeleteChoice(id, i) })
				}},
			)
		}
		if len(field.Choices) > 1 {
			actions = append(actions,
				action{FieldChoiceUp, func(ctx context.Context) (bool, error) {
					return false, e.withChoice(ctx, field, func(i int) error { return e.store.MoveChoice(id, i, -1) })
				}},
				action{FieldChoiceDown, func(ctx context.Context) (bool, error) {
					return false, e.withChoice(ctx, field, func(i int) error { return e.store.MoveChoice(id, i, 1) })
				}},
			)
		}
	}
	return append(actions,
		action{FieldMoveUp, func(context.Context) (bool, error) {
			e.store.MoveFieldUp(id)
			return false, nil
		}},
		action{FieldMoveDown, func(context.Context) (bool, error) {
			e.store.MoveFieldDown(id)
			return false, nil
		}},
		action{FieldDelete, func(ctx context.Context) (bool, error) {
			ok, err := e.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Delete %s?", e.fieldLabel(field))})
			if err != nil || !ok {
				return false, err
			}
			e.store.DeleteField(id)
			return true, nil
		}},
		action{FieldBack, func(context.Context) (bool, error) { return true, nil }},
	)
}

func (e *Editor) editRows(ctx context.Context, field model.Field) error {
	current := ""
	if field.Rows != nil {
		current = strconv.Itoa(*field.Rows)
	}
	raw, err := e.driver.Input(ctx, InputConfig{
		Message:   "Rows",
		Default:   current,
		Validator: validateRows,
	})
	if err != nil {
		return err
	}
	if err := validateRows(raw); err != nil {
		return e.report(ctx, err)
	}
	rows, _ := strconv.Atoi(strings.TrimSpace(raw))
	e.store.UpdateField(field.ID, document.FieldUpdate{Rows: &rows})
	return nil
}

func validateRows(raw string) error {
	rows, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || rows < 1 {
		return fmt.Errorf("rows must be a positive integer")
	}
	return nil
}

func (e *Editor) editChoice(ctx context.Context, field model.Field) error {
	idx, ok, err := e.pickChoice(ctx, field)
	if err != nil || !ok {
		return err
	}
	return e.editLocalized(ctx, "Choice text", field.Choices[idx].Text, func(locale, value string) {
		_ = e.store.UpdateChoiceText(field.ID, idx, locale, value)
	})
}

// withChoice asks which choice to act on and runs fn with its index.
// Operation errors are reported; prompt errors propagate.
func (e *Editor) withChoice(ctx context.Context, field model.Field, fn func(int) error) error {
	idx, ok, err := e.pickChoice(ctx, field)
	if err != nil || !ok {
		return err
	}
	return e.report(ctx, fn(idx))
}

func (e *Editor) pickChoice(ctx context.Context, field model.Field) (int, bool, error) {
	labels := make([]string, len(field.Choices))
	for i, choice := range field.Choices {
		labels[i] = fmt.Sprintf("%d. %s (%s)", i+1, choice.Text.Get(e.displayLocale), choice.Value)
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Choice", Options: labels})
	if err != nil {
		return 0, false, err
	}
	return idx, idx >= 0 && idx < len(field.Choices), nil
}
