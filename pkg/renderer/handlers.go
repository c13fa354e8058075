package renderer

import (
	"fmt"

	"github.com/goliatone/go-insightui/pkg/caip"
	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// handler builds the node for one element. Returning nil prunes the element.
type handler func(p *pass, props schema.Props, children []schema.Child, key string) component.Node

func builtinHandlers() map[string]handler {
	return map[string]handler{
		schema.TypeBox:        renderBox,
		schema.TypeSection:    renderSection,
		schema.TypeHeading:    renderHeading,
		schema.TypeText:       renderText,
		schema.TypeBold:       renderBold,
		schema.TypeItalic:     renderItalic,
		schema.TypeDivider:    renderDivider,
		schema.TypeSpinner:    renderSpinner,
		schema.TypeCopyable:   renderCopyable,
		schema.TypeImage:      renderImage,
		schema.TypeIcon:       renderIcon,
		schema.TypeAddress:    renderAddress,
		schema.TypeAvatar:     renderAvatar,
		schema.TypeBanner:     renderBanner,
		schema.TypeButton:     renderButton,
		schema.TypeCheckbox:   renderCheckbox,
		schema.TypeDropdown:   renderDropdown,
		schema.TypeOption:     renderOption,
		schema.TypeForm:       renderForm,
		schema.TypeField:      renderField,
		schema.TypeInput:      renderInput,
		schema.TypeRadioGroup: renderRadioGroup,
		schema.TypeRadio:      renderRadio,
		schema.TypeRow:        renderRow,
		schema.TypeValue:      renderValue,
		schema.TypeCard:       renderCard,
		schema.TypeTooltip:    renderTooltip,
		schema.TypeSkeleton:   renderSkeleton,
		schema.TypeLink:       renderLink,
	}
}

// Handlers only reachable from a specific parent. A selector is a field
// control and a selectoroption only lives inside a selector; at any other
// position both are unknown types.
var (
	fieldControlHandlers  = map[string]handler{schema.TypeSelector: renderSelector}
	selectorChildHandlers = map[string]handler{schema.TypeSelectorOption: renderSelectorOption}
)

func renderBox(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Box{
		Key:       key,
		Direction: props.OptString("direction"),
		Center:    props.Bool("center", false),
		Alignment: props.OptString("alignment"),
		Content:   p.container(children, key),
	}
}

func renderSection(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Section{
		Key:       key,
		Direction: props.OptString("direction"),
		Alignment: props.OptString("alignment"),
		Content:   p.container(children, key),
	}
}

func renderHeading(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Heading{
		Key:     key,
		Size:    props.OptString("size"),
		Content: props.String("children", ""),
	}
}

func renderText(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Text{
		Key:        key,
		Color:      props.OptString("color"),
		Alignment:  props.OptString("alignment"),
		Size:       props.OptString("size"),
		FontWeight: props.OptString("fontWeight"),
		Content:    p.inlineContent(props, children, key),
	}
}

func renderBold(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Bold{Key: key, Content: props.String("children", "")}
}

func renderItalic(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Italic{Key: key, Content: props.String("children", "")}
}

func renderDivider(*pass, schema.Props, []schema.Child, string) component.Node {
	return &component.Divider{}
}

func renderSpinner(*pass, schema.Props, []schema.Child, string) component.Node {
	return &component.Spinner{}
}

func renderCopyable(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Copyable{
		Key:       key,
		Value:     props.String("value", ""),
		Sensitive: props.OptBool("sensitive", false),
	}
}

func renderImage(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return renderImageNode(props, key)
}

func renderImageNode(props schema.Props, key string) *component.Image {
	return &component.Image{
		Key: key,
		Src: props.String("src", ""),
		Alt: props.String("alt", ""),
	}
}

func renderIcon(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return renderIconNode(props, key)
}

func renderIconNode(props schema.Props, key string) *component.Icon {
	return &component.Icon{
		Key:   key,
		Name:  props.String("name", DefaultIconName),
		Size:  props.OptString("size"),
		Color: props.OptString("color"),
	}
}

func renderAddress(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	addr, ok := caip.AddressValue(props.Value("address"))
	if !ok {
		return nil
	}
	return &component.Address{
		Key:         key,
		Address:     addr,
		Truncate:    props.OptBool("truncate", true),
		DisplayName: props.OptBool("displayName", true),
		Avatar:      props.OptBool("avatar", true),
	}
}

func renderAvatar(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	chainID := props.Value("chainId")
	account, ok := caip.ToCAIP10(props.Value("address"), chainID)
	if !ok {
		account, ok = caip.ToCAIP10(props.Value("account"), chainID)
	}
	if !ok {
		return nil
	}
	return &component.Avatar{
		Key:     key,
		Address: account,
		Size:    props.OptString("size"),
	}
}

func renderBanner(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Banner{
		Key:      key,
		Title:    props.String("title", ""),
		Severity: props.String("severity", DefaultBannerSeverity),
		Content:  p.banner(children, key),
	}
}

func renderButton(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Button{
		Key:     key,
		Type:    props.String("type", DefaultButtonType),
		Name:    props.OptString("name"),
		Variant: props.String("variant", DefaultButtonVariant),
		Content: p.inlineContent(props, children, key),
	}
}

func renderCheckbox(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Checkbox{
		Key:     key,
		Name:    props.String("name", ""),
		Checked: props.OptBool("checked", false),
		Variant: props.String("variant", DefaultCheckboxVariant),
		Label:   props.OptString("label"),
	}
}

func renderDropdown(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	dropdown := &component.Dropdown{Key: key, Name: props.String("name", "")}
	for _, node := range p.filtered(children, key, "opt", optionTypes) {
		if opt, ok := node.(*component.Option); ok {
			dropdown.Options = append(dropdown.Options, opt)
		}
	}
	return dropdown
}

func renderOption(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	content := props.String("label", "")
	if content == "" {
		content = props.String("children", "")
	}
	return &component.Option{
		Key:     key,
		Value:   props.String("value", ""),
		Content: content,
	}
}

func renderForm(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Form{
		Key:     key,
		Name:    props.String("name", ""),
		Content: p.filtered(children, key, "f", formTypes),
	}
}

func renderField(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	for _, child := range children {
		el, ok := child.Element()
		if !ok || !allowed(fieldTypes, el.Type) {
			continue
		}
		control := p.dispatch(el, key+"-0", fieldControlHandlers)
		if control == nil {
			return nil
		}
		return &component.Field{
			Key:     key,
			Label:   props.String("label", ""),
			Control: control,
		}
	}
	return nil
}

func renderInput(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Input{
		Key:         key,
		Name:        props.String("name", ""),
		Placeholder: props.OptString("placeholder"),
		Type:        props.OptString("type"),
		Min:         props.OptNumber("min"),
		Max:         props.OptNumber("max"),
		Step:        props.OptNumber("step"),
	}
}

func renderRadioGroup(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	group := &component.RadioGroup{Key: key, Name: props.String("name", "")}
	for _, node := range p.filtered(children, key, "r", radioTypes) {
		if radio, ok := node.(*component.Radio); ok {
			group.Radios = append(group.Radios, radio)
		}
	}
	return group
}

func renderRadio(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Radio{
		Key:     key,
		Value:   props.String("value", ""),
		Content: props.String("children", ""),
	}
}

func renderRow(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	row := &component.Row{
		Key:     key,
		Label:   props.String("label", ""),
		Content: p.rowSlot(children, key),
	}
	if variant := props.String("variant", ""); variant != "" {
		row.Variant = &variant
	}
	return row
}

func renderValue(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return &component.Value{
		Key:   key,
		Value: props.String("value", ""),
		Extra: props.String("extra", ""),
	}
}

func renderCard(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	return renderCardNode(props, key)
}

func renderCardNode(props schema.Props, key string) *component.Card {
	return &component.Card{
		Key:         key,
		Title:       props.String("title", ""),
		Value:       props.String("value", ""),
		Image:       props.OptString("image"),
		Description: props.OptString("description"),
		Extra:       props.OptString("extra"),
	}
}

func renderTooltip(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Tooltip{
		Key:        key,
		TipContent: p.tooltipContent(props.Value("content"), key),
		Content:    p.container(children, key),
	}
}

func renderSkeleton(_ *pass, props schema.Props, _ []schema.Child, key string) component.Node {
	height, ok := props.Number("height")
	if !ok {
		height = DefaultSkeletonHeight
	}
	skeleton := &component.Skeleton{
		Key:          key,
		Height:       height,
		BorderRadius: props.OptString("borderRadius"),
	}
	if width, ok := props.Number("width"); ok {
		skeleton.Width = width
	} else if width, ok := props.Value("width").(string); ok {
		skeleton.Width = width
	}
	return skeleton
}

func renderLink(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	return &component.Link{
		Key:     key,
		Href:    props.String("href", ""),
		Content: p.inlineContent(props, children, key),
	}
}

func renderSelector(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	selector := &component.Selector{
		Key:   key,
		Name:  props.String("name", ""),
		Title: props.OptString("title"),
	}
	for i, child := range children {
		el, ok := child.Element()
		if !ok {
			continue
		}
		childKey := fmt.Sprintf("%s-s-%d", key, i)
		if !allowed(selectorOptionTypes, el.Type) {
			p.pruned(el.Type, childKey, ReasonNotAllowed)
			continue
		}
		if opt, ok := p.dispatch(el, childKey, selectorChildHandlers).(*component.SelectorOption); ok {
			selector.Options = append(selector.Options, opt)
		}
	}
	return selector
}

// renderSelectorOption needs a card child; options without one are dropped.
func renderSelectorOption(p *pass, props schema.Props, children []schema.Child, key string) component.Node {
	for _, child := range children {
		el, ok := child.Element()
		if !ok || el.Type != schema.TypeCard {
			continue
		}
		card, ok := p.node(el, key+"-0").(*component.Card)
		if !ok {
			return nil
		}
		return &component.SelectorOption{
			Key:   key,
			Value: props.String("value", ""),
			Card:  card,
		}
	}
	return nil
}
