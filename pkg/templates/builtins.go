package templates

import "github.com/goliatone/go-formbuilder/pkg/model"

const (
	fallbackIcon  = "🔹"
	fallbackLabel = "Field"
	defaultRows   = 4
)

func enterText() model.LocalizedString {
	return model.NewLocalizedString("Enter text", model.LocaleVietnamese, "Nhập văn bản")
}

func defaultChoices() []model.Choice {
	return []model.Choice{model.NewChoice(1), model.NewChoice(2)}
}

func builtinTemplates() []Template {
	return []Template{
		{
			Type:  model.FieldTypeText,
			Label: "Text Input",
			Icon:  "📝",
			Field: model.Field{
				Name:        "textField",
				Title:       model.NewLocalizedString("Text Field", model.LocaleVietnamese, "Trường văn bản"),
				Placeholder: enterText(),
			},
		},
		{
			Type:  model.FieldTypeComment,
			Label: "Text Area",
			Icon:  "📄",
			Field: model.Field{
				Name:        "textareaField",
				Title:       model.NewLocalizedString("Text Area", model.LocaleVietnamese, "Vùng văn bản"),
				Placeholder: enterText(),
				Rows:        model.IntPtr(defaultRows),
			},
		},
		{
			Type:  model.FieldTypeDropdown,
			Label: "Dropdown",
			Icon:  "⬇️",
			Field: model.Field{
				Name:    "dropdownField",
				Title:   model.NewLocalizedString("Dropdown", model.LocaleVietnamese, "Danh sách thả xuống"),
				Choices: defaultChoices(),
			},
		},
		{
			Type:  model.FieldTypeRadioGroup,
			Label: "Radio Buttons",
			Icon:  "⭕",
			Field: model.Field{
				Name:    "radioField",
				Title:   model.NewLocalizedString("Radio Buttons", model.LocaleVietnamese, "Nút radio"),
				Choices: defaultChoices(),
			},
		},
		{
			Type:  model.FieldTypeCheckbox,
			Label: "Checkbox",
			Icon:  "☑️",
			Field: model.Field{
				Name:  "checkboxField",
				Title: model.NewLocalizedString("Checkbox", model.LocaleVietnamese, "Hộp kiểm"),
			},
		},
		{
			Type:  model.FieldTypeDate,
			Label: "Date Picker",
			Icon:  "📅",
			Field: model.Field{
				Name:  "dateField",
				Title: model.NewLocalizedString("Date", model.LocaleVietnamese, "Ngày"),
			},
		},
		{
			Type:  model.FieldTypeNumber,
			Label: "Number Input",
			Icon:  "🔢",
			Field: model.Field{
				Name:        "numberField",
				Title:       model.NewLocalizedString("Number", model.LocaleVietnamese, "Số"),
				Placeholder: model.NewLocalizedString("Enter number", model.LocaleVietnamese, "Nhập số"),
			},
		},
	}
}
