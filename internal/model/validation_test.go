package model

import (
	"errors"
	"testing"
)

func TestCheckFormAcceptsDefaultDocument(t *testing.T) {
	if problems := CheckForm(NewForm()); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestCheckFormReportsStructuralDefects(t *testing.T) {
	form := NewForm()
	form.Pages = append(form.Pages, NewPage(2))
	form.Pages[0].Elements = []Field{
		{ID: "dup", Type: FieldTypeText, Title: NewLocalizedString("A"), Rows: IntPtr(3)},
		{ID: "x", Type: FieldTypeDropdown, Title: LocalizedString{"vi": "B"}, Choices: []Choice{NewChoice(1), NewChoice(1)}},
	}
	form.Pages[1].Elements = []Field{
		{ID: "dup", Type: FieldTypeDate, Title: NewLocalizedString("C")},
	}

	problems := CheckForm(form)
	want := map[string]error{
		"/pages/0/elements/0/rows":            errRowsMismatch,
		"/pages/0/elements/1/title":           errMissingDefault,
		"/pages/0/elements/1/choices/1/value": errDuplicateChoice,
		"/pages/1/elements/0/id":              errDuplicateFieldID,
	}
	if len(problems) != len(want) {
		t.Fatalf("expected %d problems, got %d: %v", len(want), len(problems), problems)
	}
	for _, problem := range problems {
		expected, ok := want[problem.Path]
		if !ok {
			t.Fatalf("unexpected problem %v", problem)
		}
		if !errors.Is(problem, expected) {
			t.Fatalf("problem at %s: want %v, got %v", problem.Path, expected, problem.Err)
		}
	}
}

func TestCheckFormRequiresPages(t *testing.T) {
	form := NewForm()
	form.Pages = nil
	problems := CheckForm(form)
	if len(problems) != 1 || !errors.Is(problems[0], errNoPages) {
		t.Fatalf("expected missing pages problem, got %v", problems)
	}
}
