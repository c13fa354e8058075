// Package insightui renders untrusted UI documents into the typed component
// tree a transaction insight host displays, and serialises that tree for
// snaps hosts, HTML previews or terminals.
package insightui

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/renderer"
	"github.com/goliatone/go-insightui/pkg/renderers/html"
	"github.com/goliatone/go-insightui/pkg/renderers/jsx"
	"github.com/goliatone/go-insightui/pkg/renderers/text"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// Version is reported by the CLI and the server info endpoint.
var Version = "0.1.0"

// Element is an untrusted UI document node.
type Element = schema.Element

// Payload is the document returned by the address info endpoint.
type Payload = schema.Payload

// Node is a rendered host component.
type Node = component.Node

// Document is the unit handed to render backends.
type Document = render.Document

// RenderUI converts elements into the root Box using the default renderer.
func RenderUI(elements []Element) *component.Box {
	return renderer.RenderUI(elements)
}

// ErrorElements returns the error banner document shown when a document is
// unavailable.
func ErrorElements(message string) []Element {
	return renderer.ErrorElements(message)
}

// NewDefaultRegistry registers the jsx (default), html and text backends.
func NewDefaultRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	htmlBackend, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	for _, backend := range []render.Backend{jsx.New(), htmlBackend, text.New()} {
		if err := registry.Register(backend); err != nil {
			return nil, fmt.Errorf("insightui: register %s backend: %w", backend.Name(), err)
		}
	}
	return registry, nil
}

// RenderPayload renders payload with the default renderer and writes it
// through the named backend from registry. An empty name selects the
// registry default.
func RenderPayload(ctx context.Context, registry *render.Registry, backendName string, payload Payload) ([]byte, error) {
	backend, err := registry.Resolve(backendName)
	if err != nil {
		return nil, err
	}
	doc := Document{Content: renderer.RenderUI(payload.UI)}
	if payload.Critical() {
		doc.Severity = schema.SeverityCritical
	}
	return backend.Render(ctx, doc)
}

// EmbeddedTemplates exposes the built-in HTML page template so callers can
// reuse or extend it without importing the backend package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
