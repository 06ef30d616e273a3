package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocalizedStringGetFallsBackToDefault(t *testing.T) {
	s := NewLocalizedString("Name", LocaleVietnamese, "Tên", "fr", "")

	cases := []struct {
		locale string
		want   string
	}{
		{locale: LocaleDefault, want: "Name"},
		{locale: LocaleVietnamese, want: "Tên"},
		{locale: "fr", want: "Name"},
		{locale: "de", want: "Name"},
		{locale: "", want: "Name"},
	}
	for _, tc := range cases {
		if got := s.Get(tc.locale); got != tc.want {
			t.Fatalf("Get(%q): want %q, got %q", tc.locale, tc.want, got)
		}
	}

	var empty LocalizedString
	if got := empty.Get("vi"); got != "" {
		t.Fatalf("expected empty string from nil map, got %q", got)
	}
}

func TestLocalizedStringSetDoesNotMutateReceiver(t *testing.T) {
	original := NewLocalizedString("Title")
	updated := original.Set(LocaleVietnamese, "Tiêu đề")

	if _, ok := original[LocaleVietnamese]; ok {
		t.Fatalf("receiver mutated: %#v", original)
	}
	want := LocalizedString{LocaleDefault: "Title", LocaleVietnamese: "Tiêu đề"}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestLocalizedStringSetKeepsDefaultPresent(t *testing.T) {
	var s LocalizedString
	got := s.Set("fr", "Bonjour")
	if _, ok := got[LocaleDefault]; !ok {
		t.Fatalf("expected default key to be present, got %#v", got)
	}
	if got.Get("de") != "" {
		t.Fatalf("expected empty default fallback, got %q", got.Get("de"))
	}
}

func TestLocalizedStringLocalesOrder(t *testing.T) {
	s := LocalizedString{"vi": "b", "ar": "c", LocaleDefault: "a"}
	if diff := cmp.Diff([]string{LocaleDefault, "ar", "vi"}, s.Locales()); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}
}
