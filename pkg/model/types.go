package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText       = internalmodel.FieldTypeText
	FieldTypeComment    = internalmodel.FieldTypeComment
	FieldTypeDropdown   = internalmodel.FieldTypeDropdown
	FieldTypeRadioGroup = internalmodel.FieldTypeRadioGroup
	FieldTypeCheckbox   = internalmodel.FieldTypeCheckbox
	FieldTypeDate       = internalmodel.FieldTypeDate
	FieldTypeNumber     = internalmodel.FieldTypeNumber
)

const (
	LocaleDefault    = internalmodel.LocaleDefault
	LocaleVietnamese = internalmodel.LocaleVietnamese
)

type LocalizedString = internalmodel.LocalizedString
type Choice = internalmodel.Choice
type Field = internalmodel.Field
type Page = internalmodel.Page
type Form = internalmodel.Form
type Problem = internalmodel.Problem

// FieldTypes lists the built-in field kinds in palette order.
func FieldTypes() []FieldType {
	return internalmodel.FieldTypes()
}

// NewForm returns the initial single-page form.
func NewForm() Form {
	return internalmodel.NewForm()
}

// NewPage returns an empty, auto-titled page numbered n (1-based).
func NewPage(n int) Page {
	return internalmodel.NewPage(n)
}

// NewChoice returns the generated choice numbered n (1-based).
func NewChoice(n int) Choice {
	return internalmodel.NewChoice(n)
}

// CheckForm reports structural problems in a form. See internal/model.
func CheckForm(form Form) []Problem {
	return internalmodel.CheckForm(form)
}

// IntPtr returns a pointer to a copy of v, handy for Field.Rows.
func IntPtr(v int) *int {
	return internalmodel.IntPtr(v)
}

// CloneChoices copies a choice list, preserving nil versus empty.
func CloneChoices(choices []Choice) []Choice {
	return internalmodel.CloneChoices(choices)
}
