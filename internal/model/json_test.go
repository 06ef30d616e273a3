package model

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestFieldMarshalUsesWireOrder(t *testing.T) {
	field := Field{
		ID:         "f1",
		Name:       "comment_1234abcd",
		Type:       FieldTypeComment,
		Title:      NewLocalizedString("Notes"),
		IsRequired: true,
		Rows:       IntPtr(4),
	}

	raw, err := json.Marshal(field)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"comment","id":"f1","name":"comment_1234abcd","title":{"default":"Notes"},"isRequired":true,"rows":4}`
	if string(raw) != want {
		t.Fatalf("unexpected JSON:\nwant %s\ngot  %s", want, raw)
	}
}

func TestFieldMarshalKeepsEmptyChoiceList(t *testing.T) {
	field := Field{ID: "f1", Type: FieldTypeDropdown, Title: NewLocalizedString("Pick"), Choices: []Choice{}}
	raw, err := json.Marshal(field)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"choices":[]`) {
		t.Fatalf("expected empty choices array, got %s", raw)
	}

	var decoded Field
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Choices == nil {
		t.Fatalf("expected non-nil empty choices after round trip")
	}
}

func TestFormRoundTripPreservesUnknownMembers(t *testing.T) {
	raw := []byte(`{
		"title": {"default": "Survey", "vi": "Khảo sát"},
		"description": {"default": ""},
		"showProgressBar": "top",
		"pages": [{
			"name": "page1",
			"title": {"default": "Page 1"},
			"visibleIf": "{age} > 18",
			"elements": [{
				"type": "rating",
				"id": "r1",
				"name": "rating_1",
				"title": {"default": "Rate us"},
				"isRequired": false,
				"rateMax": 10
			}]
		}]
	}`)

	var form Form
	if err := json.Unmarshal(raw, &form); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := form.Extra["showProgressBar"]; got != "top" {
		t.Fatalf("expected form extra to survive, got %#v", got)
	}
	if got := form.Pages[0].Extra["visibleIf"]; got != "{age} > 18" {
		t.Fatalf("expected page extra to survive, got %#v", got)
	}
	field := form.Pages[0].Elements[0]
	if field.Type != FieldType("rating") || field.Type.Known() {
		t.Fatalf("expected unknown type to be kept verbatim, got %q", field.Type)
	}
	if got := field.Extra["rateMax"]; got != float64(10) {
		t.Fatalf("expected field extra to survive, got %#v", got)
	}

	encoded, err := json.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Form
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("unmarshal again: %v", err)
	}
	if diff := cmp.Diff(form, again); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormCloneIsDeep(t *testing.T) {
	form := NewForm()
	form.Pages[0].Elements = append(form.Pages[0].Elements, Field{
		ID:      "a",
		Type:    FieldTypeRadioGroup,
		Title:   NewLocalizedString("Pick"),
		Choices: []Choice{NewChoice(1)},
	})

	clone := form.Clone()
	clone.Pages[0].Elements[0].Choices[0].Text["default"] = "changed"
	clone.Title["default"] = "changed"

	if form.Pages[0].Elements[0].Choices[0].Text.Get(LocaleDefault) != "Option 1" {
		t.Fatalf("clone shares choice text with original")
	}
	if form.Title.Get(LocaleDefault) != "New Form" {
		t.Fatalf("clone shares title with original")
	}
}
