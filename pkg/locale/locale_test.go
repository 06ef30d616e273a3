package locale

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func sampleForm() model.Form {
	return model.Form{
		Title:       model.NewLocalizedString("Survey", "vi", "Khảo sát", "ja", "調査"),
		Description: model.NewLocalizedString("About you"),
		Pages: []model.Page{{
			Name:  "page1",
			Title: model.NewLocalizedString("Page 1", "vi", "Trang 1"),
			Elements: []model.Field{
				{
					ID: "a", Name: "plan", Type: model.FieldTypeDropdown,
					Title: model.NewLocalizedString("Plan", "fr", "Formule"),
					Choices: []model.Choice{
						{Value: "basic", Text: model.NewLocalizedString("Basic", "vi", "Cơ bản")},
					},
				},
				{
					ID: "b", Name: "notes", Type: model.FieldTypeComment,
					Title:       model.NewLocalizedString("Notes"),
					Placeholder: model.NewLocalizedString("Enter text", "vi", ""),
					Rows:        model.IntPtr(4),
				},
			},
		}},
	}
}

func TestLocales(t *testing.T) {
	got := Locales(sampleForm())
	if diff := cmp.Diff([]string{"default", "fr", "ja", "vi"}, got); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"default"}, Locales(model.Form{})); diff != "" {
		t.Fatalf("empty form locales mismatch:\n%s", diff)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(sampleForm(), "vi")
	want := FlatForm{
		Locale:      "vi",
		Title:       "Khảo sát",
		Description: "About you",
		Pages: []FlatPage{{
			Name:  "page1",
			Title: "Trang 1",
			Elements: []FlatField{
				{ID: "a", Name: "plan", Type: model.FieldTypeDropdown, Title: "Plan", Choices: []FlatChoice{{Value: "basic", Text: "Cơ bản"}}},
				{ID: "b", Name: "notes", Type: model.FieldTypeComment, Title: "Notes", Placeholder: "Enter text", Rows: 4},
			},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestMissing(t *testing.T) {
	got := Missing(sampleForm(), "default", "vi", "ja")
	// strings: title, description, page title, field a title, choice, field b title, placeholder
	want := map[string]int{"vi": 4, "ja": 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
}
