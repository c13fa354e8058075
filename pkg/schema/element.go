package schema

import (
	"bytes"
	"encoding/json"
)

// SeverityCritical is the only payload severity the host reacts to today.
const SeverityCritical = "critical"

// Payload is the document returned by the address info endpoint. Severity is
// free text kept for forward compatibility.
type Payload struct {
	UI       []Element `json:"ui"`
	Severity string    `json:"severity,omitempty"`
}

// Critical reports whether the payload asks the host to raise its alert level.
func (p Payload) Critical() bool {
	return p.Severity == SeverityCritical
}

// UnmarshalJSON accepts a null severity the same way as an absent one.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw struct {
		UI       []Element `json:"ui"`
		Severity any       `json:"severity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.UI = raw.UI
	p.Severity, _ = raw.Severity.(string)
	return nil
}

// Element is a node of the untrusted UI document. Type selects the rendering
// behaviour; Props is an open bag each renderer reads through typed accessors.
type Element struct {
	Type     string  `json:"type"`
	Props    Props   `json:"props,omitempty"`
	Children []Child `json:"children,omitempty"`
}

// UnmarshalJSON decodes an element without failing on mistyped members deeper
// in the tree: a non-string type becomes "", non-object props are discarded and
// unusable children decode to empty slots. Shape validation happens upstream;
// the renderer only needs a tree it can walk.
func (e *Element) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     any             `json:"type"`
		Props    any             `json:"props"`
		Children json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Element{}
	e.Type, _ = raw.Type.(string)
	if props, ok := raw.Props.(map[string]any); ok {
		e.Props = props
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw.Children, &items); err != nil || len(items) == 0 {
		return nil
	}

	e.Children = make([]Child, 0, len(items))
	for _, item := range items {
		var child Child
		if err := child.UnmarshalJSON(item); err != nil {
			child = Child{}
		}
		e.Children = append(e.Children, child)
	}
	return nil
}

// Child is either inline text or a nested element. The zero value is an empty
// slot (a null or otherwise unusable entry) and is skipped while rendering.
type Child struct {
	text    string
	isText  bool
	element *Element
}

// TextChild wraps a raw string child.
func TextChild(text string) Child {
	return Child{text: text, isText: true}
}

// ElementChild wraps a nested element child.
func ElementChild(element Element) Child {
	el := element
	return Child{element: &el}
}

// IsText reports whether the child is raw text.
func (c Child) IsText() bool {
	return c.isText
}

// Text returns the raw string for text children.
func (c Child) Text() string {
	return c.text
}

// Element returns the nested element, if any.
func (c Child) Element() (Element, bool) {
	if c.element == nil {
		return Element{}, false
	}
	return *c.element, true
}

// IsEmpty reports whether the slot carries neither text nor an element.
func (c Child) IsEmpty() bool {
	return !c.isText && c.element == nil
}

// MarshalJSON writes the child back in wire form.
func (c Child) MarshalJSON() ([]byte, error) {
	switch {
	case c.isText:
		return json.Marshal(c.text)
	case c.element != nil:
		return json.Marshal(c.element)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a string or object child. Any other JSON value yields
// an empty slot.
func (c *Child) UnmarshalJSON(data []byte) error {
	*c = Child{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*c = TextChild(text)
	case '{':
		var el Element
		if err := json.Unmarshal(trimmed, &el); err != nil {
			return err
		}
		*c = ElementChild(el)
	}
	return nil
}

// ElementFromValue converts a loosely typed value (as found inside props) into
// an Element. It reports false unless the value is an object with a string type.
func ElementFromValue(value any) (Element, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		return Element{}, false
	}
	kind, ok := obj["type"].(string)
	if !ok {
		return Element{}, false
	}

	el := Element{Type: kind}
	if props, ok := obj["props"].(map[string]any); ok {
		el.Props = props
	}
	if items, ok := obj["children"].([]any); ok {
		el.Children = make([]Child, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case string:
				el.Children = append(el.Children, TextChild(v))
			default:
				if nested, ok := ElementFromValue(v); ok {
					el.Children = append(el.Children, ElementChild(nested))
				} else {
					el.Children = append(el.Children, Child{})
				}
			}
		}
	}
	return el, true
}
