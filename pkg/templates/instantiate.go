package templates

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// NewField instantiates the template for kind with a fresh id and a machine
// name derived from the type tag and an id fragment. A nil registry uses
// Default().
func NewField(reg *Registry, kind model.FieldType) (model.Field, error) {
	if reg == nil {
		reg = Default()
	}
	field, err := reg.TemplateFor(kind)
	if err != nil {
		return model.Field{}, err
	}
	field.ID = NewID()
	field.Name = MachineName(kind, NewID())
	return field, nil
}

// NewID returns a random (v4) identifier suitable for Field.ID.
func NewID() string {
	return uuid.New().String()
}

// MachineName joins the type tag with the first eight characters of id.
func MachineName(kind model.FieldType, id string) string {
	fragment := id
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	return string(kind) + "_" + fragment
}
