package templates

import "errors"

var (
	// ErrUnknownFieldType is returned when no template is registered for a tag.
	ErrUnknownFieldType = errors.New("templates: unknown field type")
	// ErrDuplicateTemplate signals two registrations for the same tag.
	ErrDuplicateTemplate = errors.New("templates: duplicate template")
	// ErrInvalidTemplate signals a template definition missing its type tag.
	ErrInvalidTemplate = errors.New("templates: invalid template")
)
