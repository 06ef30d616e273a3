package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const validDoc = `{
  "title": {"default": "Customer questionnaire", "vi": "Bảng câu hỏi"},
  "description": {"default": ""},
  "pages": [
    {
      "name": "page1",
      "title": {"default": "Page 1"},
      "elements": [
        {"type": "text", "id": "a", "name": "fullName", "title": {"default": "Full name"}, "isRequired": true},
        {"type": "dropdown", "id": "b", "name": "plan", "title": {"default": "Plan"},
         "choices": [{"value": "basic", "text": {"default": "Basic"}}]},
        {"type": "comment", "id": "c", "name": "notes", "title": {"default": "Notes"}, "rows": 4},
        {"type": "rating", "id": "d", "name": "score", "title": {"default": "Score"}, "rateMax": 5}
      ]
    }
  ],
  "showProgressBar": "top"
}`

func decode(t *testing.T, raw string) any {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return value
}

func hasCode(result Result, code string) bool {
	for _, issue := range result.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func TestCheck_Valid(t *testing.T) {
	result, err := Check(context.Background(), decode(t, validDoc))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid result, got %+v", result)
	}
}

func TestCheck_StrictRejectsUnknownType(t *testing.T) {
	_, err := Check(context.Background(), decode(t, validDoc), WithStrictTypes())
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Result.Valid || len(shapeErr.Result.Issues) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
}

func TestCheck_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing title":     `{"pages":[{"name":"p","elements":[]}]}`,
		"no pages":          `{"title":{"default":"x"},"pages":[]}`,
		"pages not array":   `{"title":{"default":"x"},"pages":{}}`,
		"element no name":   `{"title":{"default":"x"},"pages":[{"name":"p","elements":[{"type":"text","title":{"default":"t"}}]}]}`,
		"choice no value":   `{"title":{"default":"x"},"pages":[{"name":"p","elements":[{"type":"dropdown","name":"d","title":{"default":"t"},"choices":[{"text":{"default":"A"}}]}]}]}`,
		"title not object":  `{"title":"x","pages":[{"name":"p"}]}`,
		"title no default":  `{"title":{"vi":"x"},"pages":[{"name":"p"}]}`,
		"required not bool": `{"title":{"default":"x"},"pages":[{"name":"p","elements":[{"type":"text","name":"n","title":{"default":"t"},"isRequired":"yes"}]}]}`,
		"top level array":   `[]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := Check(context.Background(), decode(t, raw))
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("expected ErrInvalidShape, got %v", err)
			}
			if result.Valid || len(result.Issues) == 0 {
				t.Fatalf("expected issues, got %+v", result)
			}
		})
	}
}

func TestCheck_MissingTitleIsRequiredIssue(t *testing.T) {
	result, _ := Check(context.Background(), decode(t, `{"pages":[{"name":"p"}]}`))
	if !hasCode(result, "required") {
		t.Fatalf("expected a required issue, got %+v", result.Issues)
	}
}

func TestLint(t *testing.T) {
	form := model.Form{
		Title: model.NewLocalizedString("x"),
		Pages: []model.Page{{
			Name: "p",
			Elements: []model.Field{
				{ID: "a", Type: model.FieldTypeText, Title: model.NewLocalizedString("A")},
				{ID: "a", Type: model.FieldTypeText, Title: model.NewLocalizedString("B")},
			},
		}},
	}
	result := Lint(form)
	if result.Valid || len(result.Issues) != 1 {
		t.Fatalf("expected one issue, got %+v", result)
	}
	issue := result.Issues[0]
	if issue.Path != "/pages/0/elements/1/id" || issue.Field != "pages[0].elements[1].id" || issue.Code != CodeStructure {
		t.Fatalf("unexpected issue %+v", issue)
	}
	if merged := result.Merge(Result{Valid: true}); merged.Valid || len(merged.Issues) != 1 {
		t.Fatalf("unexpected merge %+v", merged)
	}
}

func TestFieldPathFromPointer(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"/":                         "",
		"/title":                    "title",
		"/pages/0/elements/12/type": "pages[0].elements[12].type",
		"#/a~1b":                    "a/b",
	}
	for input, want := range cases {
		if got := fieldPathFromPointer(input); got != want {
			t.Fatalf("fieldPathFromPointer(%q): want %q, got %q", input, want, got)
		}
	}
}
