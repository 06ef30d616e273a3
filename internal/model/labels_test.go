package model

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"rating":      "Rating",
		"ratingScale": "Rating Scale",
		"file_upload": "File Upload",
		"":            "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q): want %q, got %q", input, want, got)
		}
	}
}
