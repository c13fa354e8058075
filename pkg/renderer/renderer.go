// Package renderer converts untrusted UI documents into the typed component
// tree defined by package component. Rendering never fails: elements that do not
// validate are pruned and structural gaps are filled with placeholder text.
package renderer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/schema"
)

const (
	DefaultSkeletonHeight  = 22
	DefaultButtonType      = "button"
	DefaultButtonVariant   = "primary"
	DefaultCheckboxVariant = "default"
	DefaultIconName        = "info"
	DefaultBannerSeverity  = "info"
	DefaultErrorMessage    = "An error occurred, please try again later"
)

// Prune reasons reported to observers and debug logs.
const (
	ReasonUnknownType = "unknown_type"
	ReasonInvalid     = "invalid"
	ReasonNotAllowed  = "not_allowed"
	ReasonDepth       = "max_depth"
	ReasonPanic       = "panic"
)

// Observer receives a callback for every element the renderer drops.
type Observer interface {
	NodePruned(elementType, reason string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(elementType, reason string)

func (f ObserverFunc) NodePruned(elementType, reason string) { f(elementType, reason) }

// Option customises a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for debug output about pruned elements.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers an observer notified about pruned elements.
func WithObserver(observer Observer) Option {
	return func(r *Renderer) {
		r.observer = observer
	}
}

// WithMaxDepth bounds element nesting. Elements below the limit are pruned.
// Zero disables the guard.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		if depth >= 0 {
			r.maxDepth = depth
		}
	}
}

// Renderer owns the dispatch table. A Renderer holds no per-call state and is
// safe for concurrent use.
type Renderer struct {
	handlers map[string]handler
	logger   *slog.Logger
	observer Observer
	maxDepth int
}

// New constructs a Renderer with the built-in element vocabulary.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		handlers: builtinHandlers(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Supports reports whether the renderer knows how to render elementType.
func (r *Renderer) Supports(elementType string) bool {
	_, ok := r.handlers[elementType]
	return ok
}

// Types returns the supported element type tags.
func (r *Renderer) Types() []string {
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	return out
}

// Render wraps every renderable top-level element in a single root Box. The
// result is never nil.
func (r *Renderer) Render(elements []schema.Element) *component.Box {
	root := &component.Box{Content: make([]component.Node, 0, len(elements))}
	for i, el := range elements {
		p := &pass{r: r}
		if node := p.topLevel(el, fmt.Sprintf("el-%d", i)); node != nil {
			root.Content = append(root.Content, node)
		}
	}
	return root
}

var defaultRenderer = New()

// RenderUI renders elements with the default renderer.
func RenderUI(elements []schema.Element) *component.Box {
	return defaultRenderer.Render(elements)
}

// ErrorElements returns a document made of a single danger banner carrying
// message. An empty message falls back to DefaultErrorMessage.
func ErrorElements(message string) []schema.Element {
	if message == "" {
		message = DefaultErrorMessage
	}
	return []schema.Element{{
		Type: schema.TypeBanner,
		Props: schema.Props{
			"title":    "Error",
			"severity": "danger",
		},
		Children: []schema.Child{
			schema.ElementChild(schema.Text(message)),
		},
	}}
}

// pass carries the state of a single top-level render.
type pass struct {
	r     *Renderer
	depth int
}

func (p *pass) topLevel(el schema.Element, key string) (node component.Node) {
	defer func() {
		if rec := recover(); rec != nil {
			p.r.logger.Error("renderer: element handler panicked",
				"type", el.Type, "key", key, "panic", rec)
			p.pruned(el.Type, key, ReasonPanic)
			node = nil
		}
	}()
	return p.node(el, key)
}

// node dispatches el to its handler. The returned interface is nil whenever
// the element was pruned.
func (p *pass) node(el schema.Element, key string) component.Node {
	return p.dispatch(el, key, nil)
}

// dispatch is node with extra handlers that only apply at the current
// position. Scoped handlers win over the shared table.
func (p *pass) dispatch(el schema.Element, key string, scoped map[string]handler) component.Node {
	h, ok := scoped[el.Type]
	if !ok {
		h, ok = p.r.handlers[el.Type]
	}
	if !ok {
		p.pruned(el.Type, key, ReasonUnknownType)
		return nil
	}
	if p.r.maxDepth > 0 && p.depth >= p.r.maxDepth {
		p.pruned(el.Type, key, ReasonDepth)
		return nil
	}

	p.depth++
	node := h(p, el.Props, el.Children, key)
	p.depth--

	if node == nil {
		p.pruned(el.Type, key, ReasonInvalid)
	}
	return node
}

func (p *pass) pruned(elementType, key, reason string) {
	p.r.logger.Debug("renderer: pruned element", "type", elementType, "key", key, "reason", reason)
	if p.r.observer != nil {
		p.r.observer.NodePruned(elementType, reason)
	}
}
