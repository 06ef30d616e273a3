package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestNewField(t *testing.T) {
	field, err := NewField(nil, model.FieldTypeRadioGroup)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if _, err := uuid.Parse(field.ID); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", field.ID, err)
	}
	if !strings.HasPrefix(field.Name, "radiogroup_") || len(field.Name) != len("radiogroup_")+8 {
		t.Fatalf("unexpected machine name %q", field.Name)
	}
	if len(field.Choices) != 2 {
		t.Fatalf("expected template choices, got %d", len(field.Choices))
	}

	other, err := NewField(nil, model.FieldTypeRadioGroup)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	if other.ID == field.ID {
		t.Fatalf("expected distinct ids")
	}
}

func TestNewField_Unknown(t *testing.T) {
	if _, err := NewField(Default(), "matrix"); !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

func TestMachineName_ShortID(t *testing.T) {
	if got := MachineName(model.FieldTypeText, "abc"); got != "text_abc" {
		t.Fatalf("unexpected name %q", got)
	}
}
