package model

import "strconv"

// NewForm returns the initial single-page document a session starts from.
func NewForm() Form {
	return Form{
		Title:       NewLocalizedString("New Form", LocaleVietnamese, "Biểu mẫu mới"),
		Description: NewLocalizedString("", LocaleVietnamese, ""),
		Pages:       []Page{NewPage(1)},
	}
}

// NewPage returns an empty page numbered n (1-based).
func NewPage(n int) Page {
	num := strconv.Itoa(n)
	return Page{
		Name:     "page" + num,
		Title:    NewLocalizedString("Page "+num, LocaleVietnamese, "Trang "+num),
		Elements: []Field{},
	}
}

// NewChoice returns the generated choice numbered n (1-based).
func NewChoice(n int) Choice {
	num := strconv.Itoa(n)
	return Choice{
		Value: "option" + num,
		Text:  NewLocalizedString("Option "+num, LocaleVietnamese, "Tùy chọn "+num),
	}
}
