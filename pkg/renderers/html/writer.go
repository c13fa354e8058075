package html

import (
	"fmt"
	stdhtml "html"
	"strconv"
	"strings"

	"github.com/goliatone/go-insightui/pkg/caip"
	"github.com/goliatone/go-insightui/pkg/component"
)

// writer serialises a component tree into body markup. Every dynamic value is
// escaped here; the body policy runs afterwards as a second line.
type writer struct {
	b strings.Builder
	// group is the input name used by Radio nodes inside a RadioGroup.
	group string
}

func (w *writer) text(s string) {
	w.b.WriteString(stdhtml.EscapeString(s))
}

func (w *writer) open(tag string, classes []string, key string, attrs ...string) {
	w.b.WriteByte('<')
	w.b.WriteString(tag)
	if len(classes) > 0 {
		w.attr("class", strings.Join(classes, " "))
	}
	if key != "" {
		w.attr("data-key", key)
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		w.attr(attrs[i], attrs[i+1])
	}
	w.b.WriteByte('>')
}

func (w *writer) attr(name, value string) {
	fmt.Fprintf(&w.b, ` %s="%s"`, name, stdhtml.EscapeString(value))
}

func (w *writer) close(tag string) {
	w.b.WriteString("</" + tag + ">")
}

func (w *writer) nodes(nodes []component.Node) {
	for _, node := range nodes {
		w.node(node)
	}
}

func (w *writer) node(node component.Node) {
	switch n := node.(type) {
	case nil:
	case component.String:
		w.text(string(n))
	case *component.Box:
		classes := []string{"iu-box"}
		classes = append(classes, modifier("iu-dir", n.Direction)...)
		classes = append(classes, modifier("iu-align", n.Alignment)...)
		if n.Center {
			classes = append(classes, "iu-center")
		}
		w.open("div", classes, n.Key)
		w.nodes(n.Content)
		w.close("div")
	case *component.Section:
		classes := append([]string{"iu-section"}, modifier("iu-dir", n.Direction)...)
		classes = append(classes, modifier("iu-align", n.Alignment)...)
		w.open("section", classes, n.Key)
		w.nodes(n.Content)
		w.close("section")
	case *component.Heading:
		tag := "h2"
		switch deref(n.Size) {
		case "sm":
			tag = "h4"
		case "md":
			tag = "h3"
		case "lg":
			tag = "h1"
		}
		w.open(tag, []string{"iu-heading"}, n.Key)
		w.text(n.Content)
		w.close(tag)
	case *component.Text:
		classes := []string{"iu-text"}
		classes = append(classes, modifier("iu-color", n.Color)...)
		classes = append(classes, modifier("iu-align", n.Alignment)...)
		classes = append(classes, modifier("iu-size", n.Size)...)
		classes = append(classes, modifier("iu-weight", n.FontWeight)...)
		w.open("p", classes, n.Key)
		w.nodes(n.Content)
		w.close("p")
	case *component.Bold:
		w.open("strong", nil, n.Key)
		w.text(n.Content)
		w.close("strong")
	case *component.Italic:
		w.open("em", nil, n.Key)
		w.text(n.Content)
		w.close("em")
	case *component.Divider:
		w.open("hr", []string{"iu-divider"}, "")
	case *component.Spinner:
		w.open("span", []string{"iu-spinner"}, "", "role", "status", "aria-label", "Loading")
		w.close("span")
	case *component.Copyable:
		value := n.Value
		attrs := []string{}
		if n.Sensitive != nil && *n.Sensitive {
			value = strings.Repeat("•", 8)
			attrs = append(attrs, "data-sensitive", "true")
		}
		w.open("code", []string{"iu-copyable"}, n.Key, attrs...)
		w.text(value)
		w.close("code")
	case *component.Image:
		if src := imageSource(n.Src); src != "" {
			w.open("img", []string{"iu-image"}, n.Key, "src", src, "alt", n.Alt)
		}
	case *component.Icon:
		classes := []string{"iu-icon", "iu-icon-" + classToken(n.Name)}
		classes = append(classes, modifier("iu-color", n.Color)...)
		classes = append(classes, modifier("iu-size", n.Size)...)
		w.open("span", classes, n.Key, "aria-hidden", "true")
		w.close("span")
	case *component.Address:
		w.open("span", []string{"iu-address"}, n.Key, "title", n.Address)
		w.text(displayAddress(n.Address, n.Truncate == nil || *n.Truncate))
		w.close("span")
	case *component.Avatar:
		classes := append([]string{"iu-avatar"}, modifier("iu-size", n.Size)...)
		w.open("span", classes, n.Key, "data-account", n.Address, "aria-hidden", "true")
		w.close("span")
	case *component.Banner:
		w.open("div", []string{"iu-banner", "iu-severity-" + classToken(n.Severity)}, n.Key, "role", "alert")
		if n.Title != "" {
			w.open("strong", []string{"iu-banner-title"}, "")
			w.text(n.Title)
			w.close("strong")
		}
		w.nodes(n.Content)
		w.close("div")
	case *component.Button:
		attrs := []string{"type", n.Type}
		if n.Name != nil {
			attrs = append(attrs, "name", *n.Name)
		}
		w.open("button", []string{"iu-button", "iu-variant-" + classToken(n.Variant)}, n.Key, attrs...)
		w.nodes(n.Content)
		w.close("button")
	case *component.Checkbox:
		w.open("label", []string{"iu-checkbox", "iu-variant-" + classToken(n.Variant)}, n.Key)
		attrs := []string{"type", "checkbox", "name", n.Name}
		if n.Checked != nil && *n.Checked {
			attrs = append(attrs, "checked", "checked")
		}
		w.open("input", nil, "", attrs...)
		if n.Label != nil {
			w.text(" " + *n.Label)
		}
		w.close("label")
	case *component.Dropdown:
		w.open("select", []string{"iu-dropdown"}, n.Key, "name", n.Name)
		for _, opt := range n.Options {
			w.node(opt)
		}
		w.close("select")
	case *component.Option:
		w.open("option", nil, n.Key, "value", n.Value)
		w.text(n.Content)
		w.close("option")
	case *component.Form:
		w.open("form", []string{"iu-form"}, n.Key, "name", n.Name)
		w.nodes(n.Content)
		w.close("form")
	case *component.Field:
		w.open("label", []string{"iu-field"}, n.Key)
		w.open("span", []string{"iu-field-label"}, "")
		w.text(n.Label)
		w.close("span")
		w.node(n.Control)
		w.close("label")
	case *component.Input:
		attrs := []string{"name", n.Name}
		if n.Type != nil {
			attrs = append(attrs, "type", *n.Type)
		}
		if n.Placeholder != nil {
			attrs = append(attrs, "placeholder", *n.Placeholder)
		}
		for _, num := range []struct {
			name  string
			value *float64
		}{{"min", n.Min}, {"max", n.Max}, {"step", n.Step}} {
			if num.value != nil {
				attrs = append(attrs, num.name, strconv.FormatFloat(*num.value, 'f', -1, 64))
			}
		}
		w.open("input", []string{"iu-input"}, n.Key, attrs...)
	case *component.RadioGroup:
		w.open("fieldset", []string{"iu-radiogroup"}, n.Key, "data-name", n.Name)
		prev := w.group
		w.group = n.Name
		for _, radio := range n.Radios {
			w.node(radio)
		}
		w.group = prev
		w.close("fieldset")
	case *component.Radio:
		w.open("label", []string{"iu-radio"}, n.Key)
		w.open("input", nil, "", "type", "radio", "name", w.group, "value", n.Value)
		w.text(" " + n.Content)
		w.close("label")
	case *component.Row:
		classes := append([]string{"iu-row"}, modifier("iu-variant", n.Variant)...)
		w.open("div", classes, n.Key)
		w.open("span", []string{"iu-row-label"}, "")
		w.text(n.Label)
		w.close("span")
		w.open("div", []string{"iu-row-value"}, "")
		w.node(n.Content)
		w.close("div")
		w.close("div")
	case *component.Value:
		w.open("span", []string{"iu-value"}, n.Key)
		w.text(n.Value)
		if n.Extra != "" {
			w.open("small", []string{"iu-value-extra"}, "")
			w.text(n.Extra)
			w.close("small")
		}
		w.close("span")
	case *component.Card:
		w.card(n)
	case *component.Tooltip:
		w.open("span", []string{"iu-tooltip"}, n.Key, "title", component.PlainText(n.TipContent))
		w.nodes(n.Content)
		w.close("span")
	case *component.Skeleton:
		style := "height: " + cssSize(n.Height)
		switch width := n.Width.(type) {
		case float64:
			style += "; width: " + cssSize(width)
		case string:
			if cssLength.MatchString(width) {
				style += "; width: " + width
			}
		}
		if radius := skeletonRadius(deref(n.BorderRadius)); radius != "" {
			style += "; border-radius: " + radius
		}
		w.open("div", []string{"iu-skeleton"}, n.Key, "style", style, "aria-hidden", "true")
		w.close("div")
	case *component.Link:
		w.open("a", []string{"iu-link"}, n.Key, "href", n.Href)
		w.nodes(n.Content)
		w.close("a")
	case *component.Selector:
		w.open("fieldset", []string{"iu-selector"}, n.Key, "data-name", n.Name)
		if n.Title != nil {
			w.open("legend", nil, "")
			w.text(*n.Title)
			w.close("legend")
		}
		prev := w.group
		w.group = n.Name
		for _, opt := range n.Options {
			w.node(opt)
		}
		w.group = prev
		w.close("fieldset")
	case *component.SelectorOption:
		w.open("label", []string{"iu-selector-option"}, n.Key)
		w.open("input", nil, "", "type", "radio", "name", w.group, "value", n.Value)
		if n.Card != nil {
			w.card(n.Card)
		}
		w.close("label")
	}
}

func (w *writer) card(c *component.Card) {
	w.open("div", []string{"iu-card"}, c.Key)
	if c.Image != nil {
		if src := imageSource(*c.Image); src != "" {
			w.open("img", []string{"iu-card-image"}, "", "src", src, "alt", "")
		}
	}
	w.open("strong", []string{"iu-card-title"}, "")
	w.text(c.Title)
	w.close("strong")
	if c.Description != nil {
		w.open("span", []string{"iu-card-description"}, "")
		w.text(*c.Description)
		w.close("span")
	}
	w.open("span", []string{"iu-card-value"}, "")
	w.text(c.Value)
	w.close("span")
	if c.Extra != nil {
		w.open("small", []string{"iu-card-extra"}, "")
		w.text(*c.Extra)
		w.close("small")
	}
	w.close("div")
}

func modifier(prefix string, value *string) []string {
	if value == nil || *value == "" {
		return nil
	}
	return []string{prefix + "-" + classToken(*value)}
}

// classToken reduces arbitrary text to a lowercase [a-z0-9-] token.
func classToken(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "none"
	}
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cssSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func skeletonRadius(token string) string {
	switch token {
	case "none":
		return "0px"
	case "medium":
		return "0.5rem"
	case "full":
		return "50%"
	default:
		return ""
	}
}

// displayAddress shortens the address part to 0x1234...abcd when truncate is
// set. CAIP-10 ids are shown by their address part.
func displayAddress(value string, truncate bool) string {
	addr := value
	if id, err := caip.Parse(value); err == nil {
		addr = id.Address
	}
	if !truncate || len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
