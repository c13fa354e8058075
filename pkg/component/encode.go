package component

// Element is the JSON shape hosts expect for a component: a type name, a props
// object (children included) and an optional key.
type Element struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
	Key   *string        `json:"key"`
}

// Encode converts a node into its wire representation. String nodes encode as
// plain JSON strings; nil encodes as nil.
func Encode(node Node) any {
	if node == nil {
		return nil
	}
	if s, ok := node.(String); ok {
		return string(s)
	}

	props := map[string]any{}
	switch n := node.(type) {
	case *Box:
		setOpt(props, "direction", n.Direction)
		props["center"] = n.Center
		setOpt(props, "alignment", n.Alignment)
		props["children"] = encodeList(n.Content)
	case *Section:
		setOpt(props, "direction", n.Direction)
		setOpt(props, "alignment", n.Alignment)
		props["children"] = encodeList(n.Content)
	case *Heading:
		setOpt(props, "size", n.Size)
		props["children"] = n.Content
	case *Text:
		setOpt(props, "color", n.Color)
		setOpt(props, "alignment", n.Alignment)
		setOpt(props, "size", n.Size)
		setOpt(props, "fontWeight", n.FontWeight)
		props["children"] = encodeInline(n.Content)
	case *Bold:
		props["children"] = n.Content
	case *Italic:
		props["children"] = n.Content
	case *Divider, *Spinner:
	case *Copyable:
		props["value"] = n.Value
		setOpt(props, "sensitive", n.Sensitive)
	case *Image:
		props["src"] = n.Src
		props["alt"] = n.Alt
	case *Icon:
		props["name"] = n.Name
		setOpt(props, "size", n.Size)
		setOpt(props, "color", n.Color)
	case *Address:
		props["address"] = n.Address
		setOpt(props, "truncate", n.Truncate)
		setOpt(props, "displayName", n.DisplayName)
		setOpt(props, "avatar", n.Avatar)
	case *Avatar:
		props["address"] = n.Address
		setOpt(props, "size", n.Size)
	case *Banner:
		props["title"] = n.Title
		props["severity"] = n.Severity
		props["children"] = encodeList(n.Content)
	case *Button:
		props["type"] = n.Type
		setOpt(props, "name", n.Name)
		props["variant"] = n.Variant
		props["children"] = encodeInline(n.Content)
	case *Checkbox:
		props["name"] = n.Name
		setOpt(props, "checked", n.Checked)
		props["variant"] = n.Variant
		setOpt(props, "label", n.Label)
	case *Dropdown:
		props["name"] = n.Name
		props["children"] = encodeList(n.Children())
	case *Option:
		props["value"] = n.Value
		props["children"] = n.Content
	case *Form:
		props["name"] = n.Name
		props["children"] = encodeList(n.Content)
	case *Field:
		props["label"] = n.Label
		props["children"] = Encode(n.Control)
	case *Input:
		props["name"] = n.Name
		setOpt(props, "placeholder", n.Placeholder)
		setOpt(props, "type", n.Type)
		setOpt(props, "min", n.Min)
		setOpt(props, "max", n.Max)
		setOpt(props, "step", n.Step)
	case *RadioGroup:
		props["name"] = n.Name
		props["children"] = encodeList(n.Children())
	case *Radio:
		props["value"] = n.Value
		props["children"] = n.Content
	case *Row:
		props["label"] = n.Label
		setOpt(props, "variant", n.Variant)
		if n.Content != nil {
			props["children"] = Encode(n.Content)
		}
	case *Value:
		props["value"] = n.Value
		props["extra"] = n.Extra
	case *Card:
		props["title"] = n.Title
		props["value"] = n.Value
		setOpt(props, "image", n.Image)
		setOpt(props, "description", n.Description)
		setOpt(props, "extra", n.Extra)
	case *Tooltip:
		props["content"] = Encode(n.TipContent)
		props["children"] = encodeList(n.Content)
	case *Skeleton:
		props["height"] = n.Height
		if n.Width != nil {
			props["width"] = n.Width
		}
		setOpt(props, "borderRadius", n.BorderRadius)
	case *Link:
		props["href"] = n.Href
		props["children"] = encodeInline(n.Content)
	case *Selector:
		props["name"] = n.Name
		setOpt(props, "title", n.Title)
		props["children"] = encodeList(n.Children())
	case *SelectorOption:
		props["value"] = n.Value
		if n.Card != nil {
			props["children"] = Encode(n.Card)
		}
	}

	el := Element{Type: string(node.Kind()), Props: props}
	if key := node.NodeKey(); key != "" {
		el.Key = &key
	}
	return el
}

func encodeList(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, Encode(node))
	}
	return out
}

// encodeInline collapses a single text run into a bare string, matching how
// hosts receive text children.
func encodeInline(nodes []Node) any {
	if len(nodes) == 1 {
		if s, ok := nodes[0].(String); ok {
			return string(s)
		}
	}
	return encodeList(nodes)
}

func setOpt[T any](props map[string]any, key string, value *T) {
	if value != nil {
		props[key] = *value
	}
}
