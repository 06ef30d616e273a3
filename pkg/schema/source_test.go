package schema

import "testing"

func TestParseSource(t *testing.T) {
	cases := []struct {
		input    string
		kind     SourceKind
		location string
	}{
		{input: "forms/kyc.json", kind: SourceKindFile, location: "forms/kyc.json"},
		{input: "  ./a/../b.json ", kind: SourceKindFile, location: "b.json"},
		{input: "https://example.com/forms/1", kind: SourceKindURL, location: "https://example.com/forms/1"},
		{input: "library:kyc-form", kind: SourceKindLibrary, location: "kyc-form"},
	}
	for _, tc := range cases {
		src, err := ParseSource(tc.input)
		if err != nil {
			t.Fatalf("ParseSource(%q): %v", tc.input, err)
		}
		if src.Kind() != tc.kind || src.Location() != tc.location {
			t.Fatalf("ParseSource(%q): got %s %q", tc.input, src.Kind(), src.Location())
		}
	}

	for _, bad := range []string{"", "   ", "library:", "http://"} {
		if _, err := ParseSource(bad); err == nil {
			t.Fatalf("ParseSource(%q): expected error", bad)
		}
	}
}

func TestNewDocument(t *testing.T) {
	raw := []byte(`{"title":{"default":"x"}}`)
	doc, err := NewDocument(SourceFromFS("x.json"), raw)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	raw[0] = '['
	if doc.Raw()[0] != '{' {
		t.Fatalf("document must copy its payload")
	}
	if doc.Len() != len(raw) || doc.Location() != "x.json" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if _, err := NewDocument(nil, raw); err == nil {
		t.Fatalf("expected missing source error")
	}
	if _, err := NewDocument(SourceFromFS("x"), nil); err == nil {
		t.Fatalf("expected empty payload error")
	}
}
