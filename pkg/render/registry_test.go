package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-insightui/pkg/render"
)

type stubBackend struct{ name string }

func (s stubBackend) Name() string        { return s.name }
func (s stubBackend) ContentType() string { return "text/plain" }
func (s stubBackend) Render(context.Context, render.Document) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubBackend{name: "jsx"})
	registry.MustRegister(stubBackend{name: "HTML"})

	if diff := cmp.Diff([]string{"html", "jsx"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	backend, err := registry.Resolve("")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if backend.Name() != "jsx" {
		t.Fatalf("default backend = %q, want jsx", backend.Name())
	}

	if err := registry.SetDefault("html"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if backend, _ := registry.Resolve(" "); backend.Name() != "HTML" {
		t.Fatalf("default backend = %q, want HTML", backend.Name())
	}
	if !registry.Has("Html") {
		t.Fatalf("lookups should be case insensitive")
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil backend")
	}
	if err := registry.Register(stubBackend{}); err == nil {
		t.Fatalf("expected error for unnamed backend")
	}
	registry.MustRegister(stubBackend{name: "text"})
	if err := registry.Register(stubBackend{name: "text"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if err := registry.SetDefault("pdf"); err == nil {
		t.Fatalf("expected error for unknown default")
	}
}
