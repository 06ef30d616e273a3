// Package validation checks that decoded JSON has the shape of a wire schema
// before it is turned into a form: required keys present, values of the
// expected JSON types, localized strings carrying a "default" entry, and
// optionally only built-in field type tags.
package validation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrInvalidShape reports a document that parsed as JSON but is not a form.
var ErrInvalidShape = errors.New("validation: invalid wire schema shape")

// Option tunes Check.
type Option func(*options)

type options struct {
	strictTypes bool
}

// WithStrictTypes rejects element type tags outside the built-in set.
func WithStrictTypes() Option {
	return func(o *options) {
		o.strictTypes = true
	}
}

// ShapeError carries the issues found by Check. It matches ErrInvalidShape
// under errors.Is.
type ShapeError struct {
	Result Result
}

func (e *ShapeError) Error() string {
	if len(e.Result.Issues) == 0 {
		return ErrInvalidShape.Error()
	}
	first := e.Result.Issues[0]
	msg := fmt.Sprintf("%s: %s at %s", ErrInvalidShape, first.Code, first.Path)
	if n := len(e.Result.Issues); n > 1 {
		msg += fmt.Sprintf(" (and %d more)", n-1)
	}
	return msg
}

// Is reports whether target is ErrInvalidShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// Check validates a value decoded from JSON (maps, slices, float64, ...).
// Unknown keys are accepted and ignored.
func Check(ctx context.Context, value any, opts ...Option) (Result, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if _, err := formSchema(cfg.strictTypes).Parse(ctx, value); err != nil {
		issues, ok := goskema.AsIssues(err)
		if !ok {
			issues = goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: err.Error(), Cause: err}}
		}
		result := resultFromIssues(issues)
		return result, &ShapeError{Result: result}
	}
	return Result{Valid: true}, nil
}

var (
	lenientOnce   sync.Once
	lenientSchema goskema.Schema[map[string]any]
	strictOnce    sync.Once
	strictSchema  goskema.Schema[map[string]any]
)

func formSchema(strict bool) goskema.Schema[map[string]any] {
	if strict {
		strictOnce.Do(func() { strictSchema = buildFormSchema(true) })
		return strictSchema
	}
	lenientOnce.Do(func() { lenientSchema = buildFormSchema(false) })
	return lenientSchema
}

func buildFormSchema(strict bool) goskema.Schema[map[string]any] {
	localized := g.MapOf[string](g.String())

	choice := g.Object().
		Field("value", g.StringOf[string]()).Required().
		Field("text", localized).Required().
		UnknownStrip().
		Refine("localized-defaults", requireDefaults("text")).
		MustBuild()

	element := g.Object().
		Field("type", g.StringOf[string]()).Required().
		Field("id", g.StringOf[string]()).Optional().
		Field("name", g.StringOf[string]()).Required().
		Field("title", localized).Required().
		Field("placeholder", localized).Optional().
		Field("isRequired", g.BoolOf[bool]()).Optional().
		Field("choices", g.ArrayOf[map[string]any](choice)).Optional().
		Field("rows", g.IntOf[int]()).Optional().
		UnknownStrip().
		Refine("localized-defaults", requireDefaults("title", "placeholder"))
	if strict {
		element = element.Refine("known-type", requireKnownType)
	}

	page := g.Object().
		Field("name", g.StringOf[string]()).Required().
		Field("title", localized).Optional().
		Field("elements", g.ArrayOf[map[string]any](element.MustBuild())).Optional().
		UnknownStrip().
		Refine("localized-defaults", requireDefaults("title")).
		MustBuild()

	return g.Object().
		Field("title", localized).Required().
		Field("description", localized).Optional().
		Field("pages", g.ArrayOfSchema[map[string]any](g.Array[map[string]any](page).Min(1))).Required().
		UnknownStrip().
		Refine("localized-defaults", requireDefaults("title", "description")).
		MustBuild()
}

// requireDefaults checks that each present localized member has a "default"
// key.
func requireDefaults(keys ...string) func(context.Context, map[string]any) error {
	return func(_ context.Context, obj map[string]any) error {
		var issues goskema.Issues
		for _, key := range keys {
			value, ok := obj[key]
			if !ok || value == nil {
				continue
			}
			if !hasDefault(value) {
				issues = append(issues, goskema.Issue{
					Path:    "/" + key,
					Code:    goskema.CodeRequired,
					Message: fmt.Sprintf("%s must carry a %q entry", key, model.LocaleDefault),
				})
			}
		}
		if len(issues) > 0 {
			return issues
		}
		return nil
	}
}

func hasDefault(value any) bool {
	switch v := value.(type) {
	case map[string]any:
		_, ok := v[model.LocaleDefault]
		return ok
	case map[string]string:
		_, ok := v[model.LocaleDefault]
		return ok
	case model.LocalizedString:
		_, ok := v[model.LocaleDefault]
		return ok
	default:
		return false
	}
}

func requireKnownType(_ context.Context, obj map[string]any) error {
	tag, _ := obj["type"].(string)
	if model.FieldType(tag).Known() {
		return nil
	}
	return goskema.Issues{{
		Path:    "/type",
		Code:    goskema.CodeInvalidEnum,
		Message: fmt.Sprintf("unknown field type %q", tag),
	}}
}
