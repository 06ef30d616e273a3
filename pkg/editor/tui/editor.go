// Package tui is a terminal front end for the form builder. Every menu
// action maps onto one document store or choice list operation, so the
// editor holds no form state of its own.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

// Main menu entries.
const (
	ActionFormTitle       = "Edit form title"
	ActionFormDescription = "Edit form description"
	ActionSelectPage      = "Select page"
	ActionAddPage         = "Add page"
	ActionRenamePage      = "Rename page"
	ActionDeletePage      = "Delete page"
	ActionAddField        = "Add field"
	ActionEditField       = "Edit field"
	ActionImportJSON      = "Import JSON"
	ActionShowJSON        = "Show JSON"
	ActionSaveQuit        = "Save & quit"
)

// Editor runs an interactive editing session over a document store.
type Editor struct {
	store         *document.Store
	driver        PromptDriver
	locales       []string
	displayLocale string
	importOpts    []surveyjson.ImportOption
	theme         Theme
}

type action struct {
	label string
	run   func(ctx context.Context) (done bool, err error)
}

// New builds an editor for store. Without WithPromptDriver the survey
// driver is used.
func New(store *document.Store, options ...Option) (*Editor, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	e := &Editor{
		store:         store,
		locales:       []string{model.LocaleDefault, model.LocaleVietnamese},
		displayLocale: model.LocaleDefault,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver()
	}
	return e, nil
}

// Run loops over the main menu until the user saves, returning the final
// form. Prompt errors, including ErrAborted, end the session.
func (e *Editor) Run(ctx context.Context) (model.Form, error) {
	if ctx == nil {
		return model.Form{}, errors.New("tui: context is required")
	}
	for {
		if err := ctx.Err(); err != nil {
			return model.Form{}, err
		}
		actions := e.mainActions()
		idx, err := e.choose(ctx, e.header(), actions)
		if err != nil {
			return model.Form{}, err
		}
		done, err := actions[idx].run(ctx)
		if err != nil {
			return model.Form{}, err
		}
		if done {
			return e.store.Form(), nil
		}
	}
}

func (e *Editor) header() string {
	state := e.store.Snapshot()
	title := state.Form.Title.Get(e.displayLocale)
	if title == "" {
		title = "(untitled)"
	}
	page, ok := state.CurrentPage()
	if !ok {
		return title
	}
	return fmt.Sprintf("%s | page %d/%d: %s", title, state.SelectedPageIndex+1, len(state.Form.Pages), e.pageLabel(page))
}

func (e *Editor) mainActions() []action {
	state := e.store.Snapshot()
	actions := []action{
		{ActionFormTitle, e.editFormTitle},
		{ActionFormDescription, e.editFormDescription},
	}
	if len(state.Form.Pages) > 1 {
		actions = append(actions, action{ActionSelectPage, e.selectPage})
	}
	actions = append(actions, action{ActionAddPage, e.addPage})
	if _, ok := state.CurrentPage(); ok {
		actions = append(actions,
			action{ActionRenamePage, e.renamePage},
			action{ActionDeletePage, e.deletePage},
			action{ActionAddField, e.addField},
		)
	}
	if page, ok := state.CurrentPage(); ok && len(page.Elements) > 0 {
		actions = append(actions, action{ActionEditField, e.editField})
	}
	return append(actions,
		action{ActionImportJSON, e.importJSON},
		action{ActionShowJSON, e.showJSON},
		action{ActionSaveQuit, func(context.Context) (bool, error) { return true, nil }},
	)
}

func (e *Editor) choose(ctx context.Context, message string, actions []action) (int, error) {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.label
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: message, Options: labels})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("tui: selection %d out of range", idx)
	}
	return idx, nil
}

func (e *Editor) editFormTitle(ctx context.Context) (bool, error) {
	return false, e.editLocalized(ctx, "Form title", e.store.Form().Title, e.store.SetTitle)
}

func (e *Editor) editFormDescription(ctx context.Context) (bool, error) {
	return false, e.editLocalized(ctx, "Form description", e.store.Form().Description, e.store.SetDescription)
}

func (e *Editor) selectPage(ctx context.Context) (bool, error) {
	state := e.store.Snapshot()
	labels := make([]string, len(state.Form.Pages))
	for i, page := range state.Form.Pages {
		labels[i] = fmt.Sprintf("%d. %s", i+1, e.pageLabel(page))
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Page", Options: labels, DefaultIndex: state.SelectedPageIndex})
	if err != nil {
		return false, err
	}
	return false, e.report(ctx, e.store.SetSelectedPage(idx))
}

func (e *Editor) addPage(ctx context.Context) (bool, error) {
	e.store.AddPage()
	pages := e.store.Form().Pages
	return false, e.info(ctx, fmt.Sprintf("Added %s", e.pageLabel(pages[len(pages)-1])))
}

func (e *Editor) renamePage(ctx context.Context) (bool, error) {
	idx := e.store.SelectedPageIndex()
	page, ok := e.store.CurrentPage()
	if !ok {
		return false, nil
	}
	return false, e.editLocalized(ctx, "Page title", page.Title, func(locale, value string) {
		_ = e.store.UpdatePageTitle(idx, locale, value)
	})
}

func (e *Editor) deletePage(ctx context.Context) (bool, error) {
	state := e.store.Snapshot()
	if len(state.Form.Pages) <= 1 {
		return false, e.info(ctx, "A form keeps at least one page")
	}
	page, _ := state.CurrentPage()
	ok, err := e.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Delete %s?", e.pageLabel(page))})
	if err != nil || !ok {
		return false, err
	}
	return false, e.report(ctx, e.store.DeletePage(state.SelectedPageIndex))
}

func (e *Editor) addField(ctx context.Context) (bool, error) {
	palette := e.store.Registry().Palette()
	labels := make([]string, len(palette))
	for i, entry := range palette {
		labels[i] = entry.Icon + " " + entry.Label
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Field type", Options: labels})
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(palette) {
		return false, nil
	}
	field, err := e.store.AddFieldOfType(palette[idx].Type)
	if err != nil {
		return false, e.report(ctx, err)
	}
	e.store.SetSelectedField(field.ID)
	return false, e.fieldMenu(ctx)
}

func (e *Editor) editField(ctx context.Context) (bool, error) {
	page, ok := e.store.CurrentPage()
	if !ok || len(page.Elements) == 0 {
		return false, nil
	}
	labels := make([]string, len(page.Elements))
	for i, field := range page.Elements {
		labels[i] = e.fieldLabel(field)
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Field", Options: labels})
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(page.Elements) {
		return false, nil
	}
	e.store.SetSelectedField(page.Elements[idx].ID)
	return false, e.fieldMenu(ctx)
}

func (e *Editor) importJSON(ctx context.Context) (bool, error) {
	raw, err := e.driver.TextArea(ctx, TextAreaConfig{Message: "Paste form JSON"})
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	if err := surveyjson.Import(ctx, e.store, []byte(raw), e.importOpts...); err != nil {
		return false, e.report(ctx, err)
	}
	return false, e.info(ctx, "Form imported")
}

func (e *Editor) showJSON(ctx context.Context) (bool, error) {
	raw, err := surveyjson.Export(e.store.Form())
	if err != nil {
		return false, e.report(ctx, err)
	}
	return false, e.driver.Info(ctx, strings.TrimRight(string(raw), "\n"))
}

// editLocalized asks for a locale (when more than one is configured) and
// the new text, then hands both to apply.
func (e *Editor) editLocalized(ctx context.Context, message string, current model.LocalizedString, apply func(locale, value string)) error {
	locale, err := e.pickLocale(ctx)
	if err != nil {
		return err
	}
	value, err := e.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("%s [%s]", message, locale),
		Default: current[locale],
	})
	if err != nil {
		return err
	}
	apply(locale, value)
	return nil
}

func (e *Editor) pickLocale(ctx context.Context) (string, error) {
	if len(e.locales) == 1 {
		return e.locales[0], nil
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Locale", Options: e.locales})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(e.locales) {
		return model.LocaleDefault, nil
	}
	return e.locales[idx], nil
}

func (e *Editor) pageLabel(page model.Page) string {
	if title := page.Title.Get(e.displayLocale); title != "" {
		return title
	}
	return page.Name
}

func (e *Editor) fieldLabel(field model.Field) string {
	title := field.Title.Get(e.displayLocale)
	if title == "" {
		title = field.Name
	}
	reg := e.store.Registry()
	return fmt.Sprintf("%s %s (%s)", reg.IconFor(field.Type), title, reg.LabelFor(field.Type))
}

func (e *Editor) info(ctx context.Context, msg string) error {
	return e.driver.Info(ctx, e.theme.InfoPrefix+msg)
}

// report shows a recoverable error and keeps the session going. Driver
// failures still propagate.
func (e *Editor) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return e.driver.Info(ctx, e.theme.ErrorPrefix+err.Error())
}
