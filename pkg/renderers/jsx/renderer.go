// Package jsx renders documents as the JSON result a snaps host receives from a
// transaction insight handler: the encoded component tree plus an optional
// severity.
package jsx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// Name is the registry name of the backend.
const Name = "jsx"

// Result is the serialised handler result.
type Result struct {
	Content  any    `json:"content"`
	Severity string `json:"severity,omitempty"`
}

type Option func(*Renderer)

// WithIndent pretty prints the output using the given indent.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

type Renderer struct {
	indent string
}

var _ render.Backend = (*Renderer)(nil)

// New constructs the backend.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render encodes doc. Only the critical severity is forwarded.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := Build(doc)

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(result, "", r.indent)
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return nil, fmt.Errorf("jsx renderer: encode: %w", err)
	}
	return out, nil
}

// Build converts doc into its Result value.
func Build(doc render.Document) Result {
	content := doc.Content
	if content == nil {
		content = &component.Box{}
	}
	result := Result{Content: component.Encode(content)}
	if doc.Critical() {
		result.Severity = schema.SeverityCritical
	}
	return result
}
