package sampleforms

import (
	"context"
	"testing"
)

func TestComponent_Items(t *testing.T) {
	c := New(WithStore(newStore(t, "alpha", "beta")))

	items, err := c.Items(context.Background(), "alp", "vi")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].Value != "alpha" || items[0].Label != "vi-alpha" {
		t.Fatalf("unexpected items %#v", items)
	}
}

func TestComponent_DefaultLibrary(t *testing.T) {
	var c *Component
	store, err := c.Library()
	if err != nil {
		t.Fatalf("Library: %v", err)
	}
	if _, err := store.Get(context.Background(), "kyc-form"); err != nil {
		t.Fatalf("expected bundled sample, got %v", err)
	}

	items, err := New().Items(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 bundled samples, got %d", len(items))
	}
}
