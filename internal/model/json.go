package model

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"
)

var (
	fieldKeys = map[string]struct{}{
		"type": {}, "id": {}, "name": {}, "title": {}, "placeholder": {},
		"isRequired": {}, "choices": {}, "rows": {},
	}
	pageKeys = map[string]struct{}{"name": {}, "title": {}, "elements": {}}
	formKeys = map[string]struct{}{"title": {}, "description": {}, "pages": {}}
)

// objectWriter emits JSON object members in call order, which keeps exported
// documents stable and diff-friendly.
type objectWriter struct {
	buf   bytes.Buffer
	count int
	err   error
}

func (w *objectWriter) member(key string, value any) {
	if w.err != nil {
		return
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = err
		return
	}
	if w.count == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(v)
	w.count++
}

func (w *objectWriter) extras(extra map[string]any, known map[string]struct{}) {
	if len(extra) == 0 {
		return
	}
	keys := make([]string, 0, len(extra))
	for key := range extra {
		if _, ok := known[key]; ok {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		w.member(key, extra[key])
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.count == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

func orEmpty(s LocalizedString) LocalizedString {
	if s == nil {
		return LocalizedString{}
	}
	return s
}

// MarshalJSON writes the wire shape: type, id, name, title, optional
// placeholder, isRequired, then choices/rows when present, then extras.
func (f Field) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.member("type", f.Type)
	w.member("id", f.ID)
	w.member("name", f.Name)
	w.member("title", orEmpty(f.Title))
	if f.Placeholder != nil {
		w.member("placeholder", f.Placeholder)
	}
	w.member("isRequired", f.IsRequired)
	if f.Choices != nil {
		w.member("choices", f.Choices)
	}
	if f.Rows != nil {
		w.member("rows", *f.Rows)
	}
	w.extras(f.Extra, fieldKeys)
	return w.bytes()
}

type fieldWire struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        FieldType       `json:"type"`
	Title       LocalizedString `json:"title"`
	Placeholder LocalizedString `json:"placeholder"`
	IsRequired  bool            `json:"isRequired"`
	Choices     []Choice        `json:"choices"`
	Rows        *int            `json:"rows"`
}

// UnmarshalJSON decodes the wire shape, keeping unknown members in Extra.
func (f *Field) UnmarshalJSON(data []byte) error {
	var wire fieldWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	extra, err := decodeExtras(data, fieldKeys)
	if err != nil {
		return err
	}
	*f = Field{
		ID:          wire.ID,
		Name:        wire.Name,
		Type:        wire.Type,
		Title:       wire.Title,
		Placeholder: wire.Placeholder,
		IsRequired:  wire.IsRequired,
		Choices:     wire.Choices,
		Rows:        wire.Rows,
		Extra:       extra,
	}
	return nil
}

// MarshalJSON writes name, title, elements, then extras.
func (p Page) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.member("name", p.Name)
	if p.Title != nil {
		w.member("title", p.Title)
	}
	elements := p.Elements
	if elements == nil {
		elements = []Field{}
	}
	w.member("elements", elements)
	w.extras(p.Extra, pageKeys)
	return w.bytes()
}

type pageWire struct {
	Name     string          `json:"name"`
	Title    LocalizedString `json:"title"`
	Elements []Field         `json:"elements"`
}

// UnmarshalJSON decodes a page, keeping unknown members in Extra.
func (p *Page) UnmarshalJSON(data []byte) error {
	var wire pageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	extra, err := decodeExtras(data, pageKeys)
	if err != nil {
		return err
	}
	*p = Page{Name: wire.Name, Title: wire.Title, Elements: wire.Elements, Extra: extra}
	return nil
}

// MarshalJSON writes title, description, pages, then extras.
func (f Form) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.member("title", orEmpty(f.Title))
	if f.Description != nil {
		w.member("description", f.Description)
	}
	pages := f.Pages
	if pages == nil {
		pages = []Page{}
	}
	w.member("pages", pages)
	w.extras(f.Extra, formKeys)
	return w.bytes()
}

type formWire struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Pages       []Page          `json:"pages"`
}

// UnmarshalJSON decodes a form, keeping unknown members in Extra.
func (f *Form) UnmarshalJSON(data []byte) error {
	var wire formWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	extra, err := decodeExtras(data, formKeys)
	if err != nil {
		return err
	}
	*f = Form{Title: wire.Title, Description: wire.Description, Pages: wire.Pages, Extra: extra}
	return nil
}

func decodeExtras(data []byte, known map[string]struct{}) (map[string]any, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	var extra map[string]any
	for key, raw := range members {
		if _, ok := known[key]; ok {
			continue
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra, nil
}
