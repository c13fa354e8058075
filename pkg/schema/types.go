package schema

// Element type tags understood by the renderer.
const (
	TypeBox            = "box"
	TypeSection        = "section"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeBold           = "bold"
	TypeItalic         = "italic"
	TypeDivider        = "divider"
	TypeSpinner        = "spinner"
	TypeCopyable       = "copyable"
	TypeImage          = "image"
	TypeIcon           = "icon"
	TypeAddress        = "address"
	TypeAvatar         = "avatar"
	TypeBanner         = "banner"
	TypeButton         = "button"
	TypeCheckbox       = "checkbox"
	TypeDropdown       = "dropdown"
	TypeOption         = "option"
	TypeForm           = "form"
	TypeField          = "field"
	TypeInput          = "input"
	TypeRadioGroup     = "radiogroup"
	TypeRadio          = "radio"
	TypeRow            = "row"
	TypeValue          = "value"
	TypeCard           = "card"
	TypeTooltip        = "tooltip"
	TypeSkeleton       = "skeleton"
	TypeLink           = "link"
	TypeSelector       = "selector"
	TypeSelectorOption = "selectoroption"
)

// Text returns a text element whose content comes from props.children.
func Text(content string) Element {
	return Element{Type: TypeText, Props: Props{"children": content}}
}
