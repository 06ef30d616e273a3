package surveyjson_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func goldenForm() model.Form {
	return model.Form{
		Title:       model.NewLocalizedString("Golden", model.LocaleVietnamese, "Vàng"),
		Description: model.NewLocalizedString("Exported verbatim"),
		Pages: []model.Page{
			{
				Name:  "page1",
				Title: model.NewLocalizedString("Page one"),
				Elements: []model.Field{
					{
						ID:          "f1",
						Name:        "q1",
						Type:        model.FieldTypeText,
						Title:       model.NewLocalizedString("Name"),
						Placeholder: model.NewLocalizedString("Your name"),
						IsRequired:  true,
					},
					{
						ID:    "f2",
						Name:  "q2",
						Type:  model.FieldTypeRadioGroup,
						Title: model.NewLocalizedString("Pick one", model.LocaleVietnamese, "Chọn một"),
						Choices: []model.Choice{
							{Value: "a", Text: model.NewLocalizedString("A")},
							{Value: "b", Text: model.NewLocalizedString("B")},
						},
					},
				},
			},
			{
				Name: "page2",
				Elements: []model.Field{
					{
						ID:    "f3",
						Name:  "q3",
						Type:  model.FieldTypeComment,
						Title: model.NewLocalizedString("Notes"),
						Rows:  model.IntPtr(4),
						Extra: map[string]any{"maxLength": float64(200)},
					},
				},
			},
		},
		Extra: map[string]any{"showProgressBar": "top"},
	}
}

func TestExportGolden(t *testing.T) {
	testsupport.AssertExportGolden(t, filepath.Join("testdata", "golden_form.json"), goldenForm())
}

func TestGoldenFixtureDecodes(t *testing.T) {
	got := testsupport.LoadForm(t, filepath.Join("testdata", "golden_form.json"))
	if diff := cmp.Diff(goldenForm(), got); diff != "" {
		t.Fatalf("decoded fixture mismatch (-want +got):\n%s", diff)
	}
}
