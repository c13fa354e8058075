package renderer

import (
	"fmt"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// Child whitelists per parent.
var (
	bannerTypes = typeSet(schema.TypeText, schema.TypeLink, schema.TypeIcon, schema.TypeButton, schema.TypeSkeleton)
	rowTypes    = typeSet(schema.TypeText, schema.TypeImage, schema.TypeAddress, schema.TypeLink, schema.TypeValue)
	formTypes   = typeSet(schema.TypeField, schema.TypeInput, schema.TypeButton)
	fieldTypes  = typeSet(schema.TypeDropdown, schema.TypeInput, schema.TypeSelector, schema.TypeRadioGroup)

	optionTypes         = typeSet(schema.TypeOption)
	radioTypes          = typeSet(schema.TypeRadio)
	selectorOptionTypes = typeSet(schema.TypeSelectorOption)
)

func typeSet(types ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func allowed(set map[string]struct{}, elementType string) bool {
	_, ok := set[elementType]
	return ok
}

func textNode(key, content string) *component.Text {
	return &component.Text{Key: key, Content: []component.Node{component.String(content)}}
}

// container renders every child: strings become Text nodes and elements go
// through the dispatch table.
func (p *pass) container(children []schema.Child, key string) []component.Node {
	out := make([]component.Node, 0, len(children))
	for i, child := range children {
		childKey := fmt.Sprintf("%s-child-%d", key, i)
		if child.IsText() {
			out = append(out, textNode(childKey, child.Text()))
			continue
		}
		el, ok := child.Element()
		if !ok {
			continue
		}
		if node := p.node(el, childKey); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// inline keeps plain strings and the bold, italic, icon and image elements.
// Empty strings are dropped.
func (p *pass) inline(children []schema.Child, key string) []component.Node {
	out := make([]component.Node, 0, len(children))
	for i, child := range children {
		if child.IsText() {
			if child.Text() != "" {
				out = append(out, component.String(child.Text()))
			}
			continue
		}
		el, ok := child.Element()
		if !ok {
			continue
		}
		childKey := fmt.Sprintf("%s-inline-%d", key, i)
		switch el.Type {
		case schema.TypeBold:
			out = append(out, &component.Bold{Key: childKey, Content: el.Props.String("children", "")})
		case schema.TypeItalic:
			out = append(out, &component.Italic{Key: childKey, Content: el.Props.String("children", "")})
		case schema.TypeIcon:
			out = append(out, renderIconNode(el.Props, childKey))
		case schema.TypeImage:
			out = append(out, renderImageNode(el.Props, childKey))
		default:
			p.pruned(el.Type, childKey, ReasonNotAllowed)
		}
	}
	return out
}

// inlineContent prefers rendered inline children and falls back to the
// props.children string.
func (p *pass) inlineContent(props schema.Props, children []schema.Child, key string) []component.Node {
	if nodes := p.inline(children, key); len(nodes) > 0 {
		return nodes
	}
	return []component.Node{component.String(props.String("children", ""))}
}

// banner renders the whitelisted banner body. The result always holds at
// least one node.
func (p *pass) banner(children []schema.Child, key string) []component.Node {
	out := make([]component.Node, 0, len(children))
	for i, child := range children {
		childKey := fmt.Sprintf("%s-banner-%d", key, i)
		if child.IsText() {
			out = append(out, textNode(childKey, child.Text()))
			continue
		}
		el, ok := child.Element()
		if !ok {
			continue
		}
		if !allowed(bannerTypes, el.Type) {
			p.pruned(el.Type, childKey, ReasonNotAllowed)
			continue
		}

		var node component.Node
		switch el.Type {
		case schema.TypeText:
			node = &component.Text{Key: childKey, Content: p.inlineContent(el.Props, el.Children, childKey)}
		case schema.TypeLink:
			node = &component.Link{
				Key:     childKey,
				Href:    el.Props.String("href", ""),
				Content: p.inlineContent(el.Props, el.Children, childKey),
			}
		case schema.TypeButton:
			node = &component.Button{
				Key:     childKey,
				Type:    el.Props.String("type", DefaultButtonType),
				Name:    ptr(el.Props.String("name", "")),
				Variant: el.Props.String("variant", DefaultButtonVariant),
				Content: p.inlineContent(el.Props, el.Children, childKey),
			}
		default:
			node = p.node(el, childKey)
		}
		if node != nil {
			out = append(out, node)
		}
	}

	if len(out) == 0 {
		out = append(out, textNode(key+"-placeholder", ""))
	}
	return out
}

// rowSlot renders the first child of a row, or an empty placeholder when the
// slot cannot be shown.
func (p *pass) rowSlot(children []schema.Child, key string) component.Node {
	placeholder := textNode(key+"-empty", "")
	if len(children) == 0 {
		return placeholder
	}

	first := children[0]
	if first.IsText() {
		return textNode(key+"-text", first.Text())
	}
	el, ok := first.Element()
	if !ok {
		return placeholder
	}
	childKey := key + "-child-0"
	if !allowed(rowTypes, el.Type) {
		p.pruned(el.Type, childKey, ReasonNotAllowed)
		return placeholder
	}
	if node := p.node(el, childKey); node != nil {
		return node
	}
	return placeholder
}

// filtered renders the element children whose type is in want, keyed with the
// given infix. Everything else is dropped.
func (p *pass) filtered(children []schema.Child, key, infix string, want map[string]struct{}) []component.Node {
	out := make([]component.Node, 0, len(children))
	for i, child := range children {
		el, ok := child.Element()
		if !ok {
			continue
		}
		childKey := fmt.Sprintf("%s-%s-%d", key, infix, i)
		if !allowed(want, el.Type) {
			p.pruned(el.Type, childKey, ReasonNotAllowed)
			continue
		}
		if node := p.node(el, childKey); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// tooltipContent renders the tooltip's content prop: a string, or a single
// element rendered through the dispatch table.
func (p *pass) tooltipContent(value any, key string) component.Node {
	switch v := value.(type) {
	case string:
		return component.String(v)
	case schema.Element:
		if node := p.node(v, key+"-content"); node != nil {
			return node
		}
	case map[string]any:
		el, ok := schema.ElementFromValue(v)
		if !ok {
			break
		}
		if node := p.node(el, key+"-content"); node != nil {
			return node
		}
	}
	return component.String("")
}

func ptr[T any](v T) *T {
	return &v
}
