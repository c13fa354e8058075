// Package render defines the host backends that turn a rendered component tree
// into bytes (snaps JSON, an HTML preview, terminal text) and a registry to
// look them up by name.
package render

import (
	"context"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// Document is the unit handed to backends.
type Document struct {
	Content  *component.Box
	Severity string
	// Title is used by backends that wrap the content in a page.
	Title string
}

// Critical reports whether the document carries the critical severity.
func (d Document) Critical() bool {
	return d.Severity == schema.SeverityCritical
}

// Backend converts a Document into a byte representation.
type Backend interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document) ([]byte, error)
}
