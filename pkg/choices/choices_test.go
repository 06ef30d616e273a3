package choices

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func dropdown() model.Field {
	return model.Field{
		ID:      "f1",
		Type:    model.FieldTypeDropdown,
		Title:   model.NewLocalizedString("Dropdown"),
		Choices: []model.Choice{model.NewChoice(1), model.NewChoice(2)},
	}
}

func values(field model.Field) []string {
	out := make([]string, 0, len(field.Choices))
	for _, choice := range field.Choices {
		out = append(out, choice.Value)
	}
	return out
}

func TestAdd(t *testing.T) {
	field := dropdown()
	got := Add(field)

	if diff := cmp.Diff([]string{"option1", "option2", "option3"}, values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	added := got.Choices[2]
	if added.Text.Get(model.LocaleDefault) != "Option 3" || added.Text.Get(model.LocaleVietnamese) != "Tùy chọn 3" {
		t.Fatalf("unexpected generated text %v", added.Text)
	}
	if len(field.Choices) != 2 {
		t.Fatalf("input field mutated: %d choices", len(field.Choices))
	}
}

func TestAdd_SkipsTakenValues(t *testing.T) {
	field := dropdown()
	field, err := Delete(field, 0)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// remaining: option2; next candidate option2 is taken.
	got := Add(field)
	if diff := cmp.Diff([]string{"option2", "option3"}, values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_NoChoiceList(t *testing.T) {
	field := model.Field{ID: "t", Type: model.FieldTypeText}
	got := Add(field)
	if got.Choices != nil {
		t.Fatalf("expected no-op, got %+v", got.Choices)
	}
}

func TestAdd_EmptyList(t *testing.T) {
	field := model.Field{ID: "d", Type: model.FieldTypeDropdown, Choices: []model.Choice{}}
	got := Add(field)
	if diff := cmp.Diff([]string{"option1"}, values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateText(t *testing.T) {
	field := dropdown()
	got, err := UpdateText(field, 1, model.LocaleVietnamese, "Lựa chọn B")
	if err != nil {
		t.Fatalf("UpdateText: %v", err)
	}
	choice := got.Choices[1]
	if choice.Value != "option2" {
		t.Fatalf("value must be untouched, got %q", choice.Value)
	}
	if choice.Text.Get(model.LocaleVietnamese) != "Lựa chọn B" || choice.Text.Get(model.LocaleDefault) != "Option 2" {
		t.Fatalf("unexpected text %v", choice.Text)
	}
	if field.Choices[1].Text.Get(model.LocaleVietnamese) != "Tùy chọn 2" {
		t.Fatalf("input field mutated: %v", field.Choices[1].Text)
	}
}

func TestIndexErrors(t *testing.T) {
	field := dropdown()
	if _, err := UpdateText(field, 2, "default", "x"); !errors.Is(err, ErrChoiceIndexOutOfRange) {
		t.Fatalf("expected ErrChoiceIndexOutOfRange, got %v", err)
	}
	if _, err := Delete(field, -1); !errors.Is(err, ErrChoiceIndexOutOfRange) {
		t.Fatalf("expected ErrChoiceIndexOutOfRange, got %v", err)
	}
	text := model.Field{Type: model.FieldTypeText}
	if _, err := Delete(text, 0); !errors.Is(err, ErrNotChoiceField) {
		t.Fatalf("expected ErrNotChoiceField, got %v", err)
	}
}

func TestDelete_AllowsEmptyList(t *testing.T) {
	field := dropdown()
	var err error
	for range 2 {
		field, err = Delete(field, 0)
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	if field.Choices == nil || len(field.Choices) != 0 {
		t.Fatalf("expected empty, non-nil list, got %#v", field.Choices)
	}
}

func TestDelete_DoesNotAliasInput(t *testing.T) {
	field := Add(dropdown())
	got, err := Delete(field, 0)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if diff := cmp.Diff([]string{"option1", "option2", "option3"}, values(field)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"option2", "option3"}, values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestMove(t *testing.T) {
	field := dropdown()
	got, err := Move(field, 0, +1)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if diff := cmp.Diff([]string{"option2", "option1"}, values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	same, err := Move(field, 0, -1)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if diff := cmp.Diff(values(field), values(same)); diff != "" {
		t.Fatalf("boundary move changed order:\n%s", diff)
	}
}

func TestMove_OnlyAdjacent(t *testing.T) {
	field := Add(dropdown())

	tests := []struct {
		name  string
		index int
		delta int
		want  []string
	}{
		{name: "large positive", index: 0, delta: 2, want: []string{"option2", "option1", "option3"}},
		{name: "large negative", index: 2, delta: -5, want: []string{"option1", "option3", "option2"}},
		{name: "zero", index: 1, delta: 0, want: []string{"option1", "option2", "option3"}},
		{name: "past end", index: 2, delta: 3, want: []string{"option1", "option2", "option3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Move(field, tt.index, tt.delta)
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			if diff := cmp.Diff(tt.want, values(got)); diff != "" {
				t.Fatalf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
