// Package text renders insight documents as an indented outline for terminals.
// Styling goes through termenv so output degrades to plain text on dumb
// terminals and in pipes.
package text

import (
	"context"
	"strings"

	"github.com/muesli/termenv"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/render"
)

// Name is the registry name of the backend.
const Name = "text"

const indentUnit = "  "

var severityColors = map[string]string{
	"info":    "#0376c9",
	"success": "#1c8234",
	"warning": "#bf5200",
	"danger":  "#d73847",
}

type Option func(*Renderer)

// WithProfile sets the termenv colour profile. The default is termenv.Ascii,
// which emits no escape sequences.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}

// WithDetectedProfile uses the colour profile of the process stdout.
func WithDetectedProfile() Option {
	return func(r *Renderer) {
		r.profile = termenv.ColorProfile()
	}
}

type Renderer struct {
	profile termenv.Profile
}

var _ render.Backend = (*Renderer)(nil)

// New constructs the backend.
func New(options ...Option) *Renderer {
	r := &Renderer{profile: termenv.Ascii}
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
	return "text/plain; charset=utf-8"
}

// Render writes one line per node. The root box is implicit.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if doc.Critical() {
		b.WriteString(r.color("! "+strings.ToUpper(doc.Severity), severityColors["danger"]).Bold().String())
		b.WriteByte('\n')
	}
	if doc.Content != nil {
		for _, node := range doc.Content.Content {
			r.write(&b, node, 0)
		}
	}
	return []byte(b.String()), nil
}

func (r *Renderer) write(b *strings.Builder, node component.Node, depth int) {
	if node == nil {
		return
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(r.describe(node))
	b.WriteByte('\n')

	for _, child := range r.nested(node) {
		r.write(b, child, depth+1)
	}
}

// nested lists the children printed on their own lines below node. Inline
// content is folded into the node's own line by describe.
func (r *Renderer) nested(node component.Node) []component.Node {
	switch n := node.(type) {
	case *component.Box, *component.Section, *component.Banner, *component.Form,
		*component.Field, *component.Tooltip, *component.Dropdown, *component.RadioGroup,
		*component.Selector:
		return n.Children()
	case *component.Row:
		if n.Content == nil {
			return nil
		}
		return r.nested(n.Content)
	default:
		return nil
	}
}

func (r *Renderer) describe(node component.Node) string {
	switch n := node.(type) {
	case component.String:
		return string(n)
	case *component.Box:
		return r.plain("box" + direction(n.Direction)).Faint().String()
	case *component.Section:
		return r.plain("section" + direction(n.Direction)).Faint().String()
	case *component.Heading:
		return r.plain(n.Content).Bold().Underline().String()
	case *component.Text:
		return r.textColor(r.inline(n.Content), n.Color)
	case *component.Bold:
		return r.plain(n.Content).Bold().String()
	case *component.Italic:
		return r.plain(n.Content).Italic().String()
	case *component.Divider:
		return r.plain(strings.Repeat("─", 24)).Faint().String()
	case *component.Spinner:
		return r.plain("[loading]").Faint().String()
	case *component.Copyable:
		value := n.Value
		if n.Sensitive != nil && *n.Sensitive {
			value = strings.Repeat("*", 8)
		}
		return "copy: " + r.plain(value).Italic().String()
	case *component.Image:
		if n.Alt != "" {
			return "[image: " + n.Alt + "]"
		}
		return "[image]"
	case *component.Icon:
		return "[icon: " + n.Name + "]"
	case *component.Address:
		return "address: " + r.plain(n.Address).Bold().String()
	case *component.Avatar:
		return "avatar: " + n.Address
	case *component.Banner:
		label := "[" + strings.ToUpper(n.Severity) + "]"
		if n.Title != "" {
			label += " " + n.Title
		}
		return r.color(label, severityColors[n.Severity]).Bold().String()
	case *component.Button:
		return "[ " + r.inline(n.Content) + " ]"
	case *component.Checkbox:
		mark := "[ ]"
		if n.Checked != nil && *n.Checked {
			mark = "[x]"
		}
		if n.Label != nil {
			return mark + " " + *n.Label
		}
		return mark + " " + n.Name
	case *component.Dropdown:
		return "select " + n.Name
	case *component.Option:
		return "- " + n.Content + " (" + n.Value + ")"
	case *component.Form:
		return "form " + n.Name
	case *component.Field:
		return n.Label + ":"
	case *component.Input:
		line := "input " + n.Name
		if n.Placeholder != nil && *n.Placeholder != "" {
			line += " " + r.plain("<"+*n.Placeholder+">").Faint().String()
		}
		return line
	case *component.RadioGroup:
		return "radio " + n.Name
	case *component.Radio:
		return "( ) " + n.Content + " (" + n.Value + ")"
	case *component.Row:
		label := r.plain(n.Label + ":").Faint().String()
		if n.Content == nil {
			return label
		}
		value := r.describe(n.Content)
		if n.Variant != nil {
			switch *n.Variant {
			case "warning":
				value = r.color(value, severityColors["warning"]).String()
			case "critical":
				value = r.color(value, severityColors["danger"]).String()
			}
		}
		return label + " " + value
	case *component.Value:
		if n.Extra != "" {
			return n.Value + " " + r.plain("("+n.Extra+")").Faint().String()
		}
		return n.Value
	case *component.Card:
		return describeCard(n)
	case *component.Tooltip:
		return "tooltip: " + r.plain(component.PlainText(n.TipContent)).Italic().String()
	case *component.Skeleton:
		return r.plain(strings.Repeat("░", 12)).Faint().String()
	case *component.Link:
		return r.plain(r.inline(n.Content)).Underline().String() + " <" + n.Href + ">"
	case *component.Selector:
		if n.Title != nil && *n.Title != "" {
			return "selector " + n.Name + ": " + *n.Title
		}
		return "selector " + n.Name
	case *component.SelectorOption:
		if n.Card == nil {
			return "( ) " + n.Value
		}
		return "( ) " + describeCard(n.Card)
	default:
		return string(node.Kind())
	}
}

// inline joins inline runs into a single line.
func (r *Renderer) inline(nodes []component.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, r.describe(node))
	}
	return strings.Join(parts, "")
}

func (r *Renderer) textColor(s string, color *string) string {
	if color == nil {
		return s
	}
	switch *color {
	case "muted", "alternative":
		return r.plain(s).Faint().String()
	case "error":
		return r.color(s, severityColors["danger"]).String()
	case "warning":
		return r.color(s, severityColors["warning"]).String()
	case "success":
		return r.color(s, severityColors["success"]).String()
	default:
		return s
	}
}

func (r *Renderer) plain(s string) termenv.Style {
	return r.profile.String(s)
}

func (r *Renderer) color(s, hex string) termenv.Style {
	style := r.profile.String(s)
	if hex == "" {
		return style
	}
	return style.Foreground(r.profile.Color(hex))
}

func describeCard(c *component.Card) string {
	line := c.Title + ": " + c.Value
	if c.Description != nil && *c.Description != "" {
		line += " - " + *c.Description
	}
	if c.Extra != nil && *c.Extra != "" {
		line += " (" + *c.Extra + ")"
	}
	return line
}

func direction(dir *string) string {
	if dir == nil || *dir == "" {
		return ""
	}
	return " (" + *dir + ")"
}
