package model

// FieldType is the closed set of field kinds understood by the downstream
// survey renderer. Unknown tags survive import untouched; they simply carry no
// template, label, or icon behaviour.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeComment    FieldType = "comment"
	FieldTypeDropdown   FieldType = "dropdown"
	FieldTypeRadioGroup FieldType = "radiogroup"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypeDate       FieldType = "date"
	FieldTypeNumber     FieldType = "number"
)

// FieldTypes lists the built-in kinds in palette order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeComment,
		FieldTypeDropdown,
		FieldTypeRadioGroup,
		FieldTypeCheckbox,
		FieldTypeDate,
		FieldTypeNumber,
	}
}

// Known reports whether the tag belongs to the built-in set.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeComment, FieldTypeDropdown, FieldTypeRadioGroup,
		FieldTypeCheckbox, FieldTypeDate, FieldTypeNumber:
		return true
	}
	return false
}

// ChoiceBearing reports whether fields of this kind own a choice list.
func (t FieldType) ChoiceBearing() bool {
	return t == FieldTypeDropdown || t == FieldTypeRadioGroup
}

// Multiline reports whether fields of this kind carry a rows hint.
func (t FieldType) Multiline() bool {
	return t == FieldTypeComment
}

// Choice is one selectable option of a dropdown or radio group. Value is the
// stable identifier submitted by the renderer; Text is what users read.
type Choice struct {
	Value string          `json:"value" yaml:"value"`
	Text  LocalizedString `json:"text" yaml:"text"`
}

// Field models a single input definition. ID is assigned once at creation and
// never rewritten. Choices is non-nil only for choice-bearing kinds and Rows
// only for multi-line text. Extra keeps wire properties this package does not
// model so they round-trip verbatim.
type Field struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        FieldType       `json:"type"`
	Title       LocalizedString `json:"title"`
	Placeholder LocalizedString `json:"placeholder,omitempty"`
	IsRequired  bool            `json:"isRequired"`
	Choices     []Choice        `json:"choices,omitempty"`
	Rows        *int            `json:"rows,omitempty"`
	Extra       map[string]any  `json:"-"`
}

// HasChoices reports whether the field owns a choice list (possibly empty).
func (f Field) HasChoices() bool {
	return f.Choices != nil
}

// Page is an ordered container of fields. Element order is display order.
type Page struct {
	Name     string          `json:"name"`
	Title    LocalizedString `json:"title"`
	Elements []Field         `json:"elements"`
	Extra    map[string]any  `json:"-"`
}

// IndexOf returns the position of the field with the given id, or -1.
func (p Page) IndexOf(fieldID string) int {
	for idx, field := range p.Elements {
		if field.ID == fieldID {
			return idx
		}
	}
	return -1
}

// Form is the root aggregate exported to the survey renderer.
type Form struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Pages       []Page          `json:"pages"`
	Extra       map[string]any  `json:"-"`
}

// FieldCount returns the number of fields across every page.
func (f Form) FieldCount() int {
	total := 0
	for _, page := range f.Pages {
		total += len(page.Elements)
	}
	return total
}
