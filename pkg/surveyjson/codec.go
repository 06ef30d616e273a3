// Package surveyjson converts forms to and from the JSON schema consumed by
// the survey rendering engine.
//
// Export is a verbatim structural transform. Import is all-or-nothing: the
// text is parsed and shape-checked first, and only a fully decoded form is
// handed to the store.
package surveyjson

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

const indent = "  "

// Export serialises form to indented wire JSON. Nothing is filtered; fields
// missing sub-structures are written as they are.
func Export(form model.Form) ([]byte, error) {
	compact, err := ExportCompact(form)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("surveyjson: indent: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ExportCompact serialises form without insignificant whitespace.
func ExportCompact(form model.Form) ([]byte, error) {
	raw, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("surveyjson: encode: %w", err)
	}
	return raw, nil
}

// ImportOption tunes Decode and Import.
type ImportOption func(*importConfig)

type importConfig struct {
	shapeCheck  bool
	strictTypes bool
}

// WithoutShapeCheck hands any syntactically valid object to the store, the
// way the editor originally behaved.
func WithoutShapeCheck() ImportOption {
	return func(c *importConfig) {
		c.shapeCheck = false
	}
}

// WithStrictTypes rejects field type tags outside the built-in set.
func WithStrictTypes() ImportOption {
	return func(c *importConfig) {
		c.strictTypes = true
	}
}

func newImportConfig(options []ImportOption) importConfig {
	cfg := importConfig{shapeCheck: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Decode parses raw into a form. Syntax errors match ErrMalformedJSON; shape
// problems match validation.ErrInvalidShape and carry a *validation.Result.
func Decode(ctx context.Context, raw []byte, options ...ImportOption) (model.Form, error) {
	cfg := newImportConfig(options)

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return model.Form{}, syntaxError(err)
	}

	if cfg.shapeCheck {
		var checkOpts []validation.Option
		if cfg.strictTypes {
			checkOpts = append(checkOpts, validation.WithStrictTypes())
		}
		if _, err := validation.Check(ctx, value, checkOpts...); err != nil {
			return model.Form{}, err
		}
	}

	var form model.Form
	if err := json.Unmarshal(raw, &form); err != nil {
		return model.Form{}, fmt.Errorf("%w: %v", validation.ErrInvalidShape, err)
	}
	return form, nil
}

// Import decodes raw and replaces the store's document with the result. On
// any error the store is left as it was.
func Import(ctx context.Context, store *document.Store, raw []byte, options ...ImportOption) error {
	if store == nil {
		return ErrNilStore
	}
	form, err := Decode(ctx, raw, options...)
	if err != nil {
		return err
	}
	store.LoadForm(form)
	return nil
}

func syntaxError(err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &SyntaxError{Offset: syn.Offset, Err: err}
	}
	return &SyntaxError{Err: err}
}
