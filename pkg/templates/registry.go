package templates

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Template is the canonical default shape instantiated when a field of Type
// is created, plus the palette metadata shown next to it.
type Template struct {
	Type  model.FieldType
	Label string
	Icon  string
	Field model.Field
}

// Entry is the presentation metadata for one palette item.
type Entry struct {
	Type  model.FieldType
	Label string
	Icon  string
}

// Registry maps field type tags to templates. It is immutable once built, so
// a single instance can be shared freely across goroutines.
type Registry struct {
	templates map[model.FieldType]Template
	order     []model.FieldType
}

// Option configures registry construction.
type Option func(*config)

type config struct {
	skipBuiltins bool
	extra        []Template
	packs        []fs.FS
}

// WithTemplates registers additional templates after the built-ins.
func WithTemplates(templates ...Template) Option {
	return func(c *config) {
		c.extra = append(c.extra, templates...)
	}
}

// WithPackFS loads JSON/YAML template packs from fsys (see LoadFS).
func WithPackFS(fsys fs.FS) Option {
	return func(c *config) {
		if fsys != nil {
			c.packs = append(c.packs, fsys)
		}
	}
}

// WithoutBuiltins starts from an empty table.
func WithoutBuiltins() Option {
	return func(c *config) {
		c.skipBuiltins = true
	}
}

// NewRegistry builds a registry with the seven built-in templates plus any
// configured extras. Registering the same tag twice is an error.
func NewRegistry(options ...Option) (*Registry, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	reg := &Registry{templates: make(map[model.FieldType]Template)}
	if !cfg.skipBuiltins {
		for _, tpl := range builtinTemplates() {
			if err := reg.register(tpl); err != nil {
				return nil, err
			}
		}
	}
	for _, tpl := range cfg.extra {
		if err := reg.register(tpl); err != nil {
			return nil, err
		}
	}
	for _, fsys := range cfg.packs {
		loaded, err := LoadFS(fsys)
		if err != nil {
			return nil, err
		}
		for _, tpl := range loaded {
			if err := reg.register(tpl); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// MustNewRegistry panics when NewRegistry fails. Useful for tests and
// package-level wiring.
func MustNewRegistry(options ...Option) *Registry {
	reg, err := NewRegistry(options...)
	if err != nil {
		panic(err)
	}
	return reg
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding only the built-ins.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNewRegistry()
	})
	return defaultRegistry
}

func (r *Registry) register(tpl Template) error {
	kind := model.FieldType(strings.TrimSpace(string(tpl.Type)))
	if kind == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidTemplate)
	}
	if _, exists := r.templates[kind]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateTemplate, kind)
	}
	r.templates[kind] = normaliseTemplate(kind, tpl)
	r.order = append(r.order, kind)
	return nil
}

func normaliseTemplate(kind model.FieldType, tpl Template) Template {
	tpl.Type = kind
	tpl.Label = strings.TrimSpace(tpl.Label)
	if tpl.Label == "" {
		tpl.Label = model.Labelize(string(kind))
	}
	tpl.Icon = sanitizeIcon(tpl.Icon)

	field := tpl.Field.Clone()
	field.ID = ""
	field.Type = kind
	if field.Name == "" {
		field.Name = string(kind) + "Field"
	}
	if _, ok := field.Title[model.LocaleDefault]; !ok {
		field.Title = field.Title.Set(model.LocaleDefault, tpl.Label)
	}
	if kind.ChoiceBearing() && field.Choices == nil {
		field.Choices = defaultChoices()
	}
	if kind.Multiline() && field.Rows == nil {
		field.Rows = model.IntPtr(defaultRows)
	}
	tpl.Field = field
	return tpl
}

// Has reports whether a template is registered for kind.
func (r *Registry) Has(kind model.FieldType) bool {
	if r == nil {
		return false
	}
	_, ok := r.templates[kind]
	return ok
}

// TemplateFor returns an independent copy of the template field for kind.
func (r *Registry) TemplateFor(kind model.FieldType) (model.Field, error) {
	if r == nil {
		return model.Field{}, fmt.Errorf("%w %q", ErrUnknownFieldType, kind)
	}
	tpl, ok := r.templates[kind]
	if !ok {
		return model.Field{}, fmt.Errorf("%w %q", ErrUnknownFieldType, kind)
	}
	return tpl.Field.Clone(), nil
}

// LabelFor returns the palette label, or a humanised tag for unknown kinds.
func (r *Registry) LabelFor(kind model.FieldType) string {
	if r != nil {
		if tpl, ok := r.templates[kind]; ok {
			return tpl.Label
		}
	}
	if label := model.Labelize(string(kind)); label != "" {
		return label
	}
	return fallbackLabel
}

// IconFor returns the palette icon, or a generic marker for unknown kinds.
func (r *Registry) IconFor(kind model.FieldType) string {
	if r != nil {
		if tpl, ok := r.templates[kind]; ok && tpl.Icon != "" {
			return tpl.Icon
		}
	}
	return fallbackIcon
}

// Palette lists every registered kind in registration order.
func (r *Registry) Palette() []Entry {
	if r == nil {
		return nil
	}
	entries := make([]Entry, 0, len(r.order))
	for _, kind := range r.order {
		tpl := r.templates[kind]
		entries = append(entries, Entry{Type: kind, Label: tpl.Label, Icon: r.IconFor(kind)})
	}
	return entries
}

// TemplateFor looks up kind in the default registry.
func TemplateFor(kind model.FieldType) (model.Field, error) {
	return Default().TemplateFor(kind)
}

// LabelFor looks up the palette label in the default registry.
func LabelFor(kind model.FieldType) string {
	return Default().LabelFor(kind)
}

// IconFor looks up the palette icon in the default registry.
func IconFor(kind model.FieldType) string {
	return Default().IconFor(kind)
}
