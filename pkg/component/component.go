// Package component defines the typed host vocabulary produced by the
// renderer. Every node is a plain value built once per render call; nothing in
// this package mutates a node after construction.
package component

// Kind names a host component.
type Kind string

const (
	KindBox            Kind = "Box"
	KindSection        Kind = "Section"
	KindHeading        Kind = "Heading"
	KindText           Kind = "Text"
	KindBold           Kind = "Bold"
	KindItalic         Kind = "Italic"
	KindDivider        Kind = "Divider"
	KindSpinner        Kind = "Spinner"
	KindCopyable       Kind = "Copyable"
	KindImage          Kind = "Image"
	KindIcon           Kind = "Icon"
	KindAddress        Kind = "Address"
	KindAvatar         Kind = "Avatar"
	KindBanner         Kind = "Banner"
	KindButton         Kind = "Button"
	KindCheckbox       Kind = "Checkbox"
	KindDropdown       Kind = "Dropdown"
	KindOption         Kind = "Option"
	KindForm           Kind = "Form"
	KindField          Kind = "Field"
	KindInput          Kind = "Input"
	KindRadioGroup     Kind = "RadioGroup"
	KindRadio          Kind = "Radio"
	KindRow            Kind = "Row"
	KindValue          Kind = "Value"
	KindCard           Kind = "Card"
	KindTooltip        Kind = "Tooltip"
	KindSkeleton       Kind = "Skeleton"
	KindLink           Kind = "Link"
	KindSelector       Kind = "Selector"
	KindSelectorOption Kind = "SelectorOption"
	KindString         Kind = "#text"
)

// Node is implemented by every rendered component.
type Node interface {
	Kind() Kind
	NodeKey() string
	Children() []Node
}

// String is literal text content inside a parent node.
type String string

func (String) Kind() Kind       { return KindString }
func (String) NodeKey() string  { return "" }
func (String) Children() []Node { return nil }
func (s String) String() string { return string(s) }

// Box is a generic block container. The renderer also uses it as the root.
type Box struct {
	Key       string
	Direction *string
	Center    bool
	Alignment *string
	Content   []Node
}

func (*Box) Kind() Kind         { return KindBox }
func (b *Box) NodeKey() string  { return b.Key }
func (b *Box) Children() []Node { return b.Content }

type Section struct {
	Key       string
	Direction *string
	Alignment *string
	Content   []Node
}

func (*Section) Kind() Kind         { return KindSection }
func (s *Section) NodeKey() string  { return s.Key }
func (s *Section) Children() []Node { return s.Content }

type Heading struct {
	Key     string
	Size    *string
	Content string
}

func (*Heading) Kind() Kind         { return KindHeading }
func (h *Heading) NodeKey() string  { return h.Key }
func (h *Heading) Children() []Node { return []Node{String(h.Content)} }

// Text holds inline content: String, Bold, Italic, Icon or Image nodes.
type Text struct {
	Key        string
	Color      *string
	Alignment  *string
	Size       *string
	FontWeight *string
	Content    []Node
}

func (*Text) Kind() Kind         { return KindText }
func (t *Text) NodeKey() string  { return t.Key }
func (t *Text) Children() []Node { return t.Content }

type Bold struct {
	Key     string
	Content string
}

func (*Bold) Kind() Kind         { return KindBold }
func (b *Bold) NodeKey() string  { return b.Key }
func (b *Bold) Children() []Node { return []Node{String(b.Content)} }

type Italic struct {
	Key     string
	Content string
}

func (*Italic) Kind() Kind         { return KindItalic }
func (i *Italic) NodeKey() string  { return i.Key }
func (i *Italic) Children() []Node { return []Node{String(i.Content)} }

type Divider struct{}

func (*Divider) Kind() Kind       { return KindDivider }
func (*Divider) NodeKey() string  { return "" }
func (*Divider) Children() []Node { return nil }

type Spinner struct{}

func (*Spinner) Kind() Kind       { return KindSpinner }
func (*Spinner) NodeKey() string  { return "" }
func (*Spinner) Children() []Node { return nil }

type Copyable struct {
	Key       string
	Value     string
	Sensitive *bool
}

func (*Copyable) Kind() Kind         { return KindCopyable }
func (c *Copyable) NodeKey() string  { return c.Key }
func (c *Copyable) Children() []Node { return nil }

// Image carries either SVG markup or an image URL in Src.
type Image struct {
	Key string
	Src string
	Alt string
}

func (*Image) Kind() Kind         { return KindImage }
func (i *Image) NodeKey() string  { return i.Key }
func (i *Image) Children() []Node { return nil }

type Icon struct {
	Key   string
	Name  string
	Size  *string
	Color *string
}

func (*Icon) Kind() Kind         { return KindIcon }
func (i *Icon) NodeKey() string  { return i.Key }
func (i *Icon) Children() []Node { return nil }

// Address is a hex address or CAIP-10 account id. Display flags stay nil when
// the document left them to the host default.
type Address struct {
	Key         string
	Address     string
	Truncate    *bool
	DisplayName *bool
	Avatar      *bool
}

func (*Address) Kind() Kind         { return KindAddress }
func (a *Address) NodeKey() string  { return a.Key }
func (a *Address) Children() []Node { return nil }

// Avatar always carries a CAIP-10 account id.
type Avatar struct {
	Key     string
	Address string
	Size    *string
}

func (*Avatar) Kind() Kind         { return KindAvatar }
func (a *Avatar) NodeKey() string  { return a.Key }
func (a *Avatar) Children() []Node { return nil }

// Banner never has an empty Content slice.
type Banner struct {
	Key      string
	Title    string
	Severity string
	Content  []Node
}

func (*Banner) Kind() Kind         { return KindBanner }
func (b *Banner) NodeKey() string  { return b.Key }
func (b *Banner) Children() []Node { return b.Content }

type Button struct {
	Key     string
	Type    string
	Name    *string
	Variant string
	Content []Node
}

func (*Button) Kind() Kind         { return KindButton }
func (b *Button) NodeKey() string  { return b.Key }
func (b *Button) Children() []Node { return b.Content }

type Checkbox struct {
	Key     string
	Name    string
	Checked *bool
	Variant string
	Label   *string
}

func (*Checkbox) Kind() Kind         { return KindCheckbox }
func (c *Checkbox) NodeKey() string  { return c.Key }
func (c *Checkbox) Children() []Node { return nil }

// Dropdown only ever contains *Option nodes.
type Dropdown struct {
	Key     string
	Name    string
	Options []*Option
}

func (*Dropdown) Kind() Kind        { return KindDropdown }
func (d *Dropdown) NodeKey() string { return d.Key }
func (d *Dropdown) Children() []Node {
	out := make([]Node, 0, len(d.Options))
	for _, opt := range d.Options {
		out = append(out, opt)
	}
	return out
}

type Option struct {
	Key     string
	Value   string
	Content string
}

func (*Option) Kind() Kind         { return KindOption }
func (o *Option) NodeKey() string  { return o.Key }
func (o *Option) Children() []Node { return []Node{String(o.Content)} }

// Form contains Field, Input and Button nodes.
type Form struct {
	Key     string
	Name    string
	Content []Node
}

func (*Form) Kind() Kind         { return KindForm }
func (f *Form) NodeKey() string  { return f.Key }
func (f *Form) Children() []Node { return f.Content }

// Field wraps exactly one control: Dropdown, Input, Selector or RadioGroup.
type Field struct {
	Key     string
	Label   string
	Control Node
}

func (*Field) Kind() Kind        { return KindField }
func (f *Field) NodeKey() string { return f.Key }
func (f *Field) Children() []Node {
	if f.Control == nil {
		return nil
	}
	return []Node{f.Control}
}

type Input struct {
	Key         string
	Name        string
	Placeholder *string
	Type        *string
	Min         *float64
	Max         *float64
	Step        *float64
}

func (*Input) Kind() Kind         { return KindInput }
func (i *Input) NodeKey() string  { return i.Key }
func (i *Input) Children() []Node { return nil }

// RadioGroup only ever contains *Radio nodes.
type RadioGroup struct {
	Key    string
	Name   string
	Radios []*Radio
}

func (*RadioGroup) Kind() Kind        { return KindRadioGroup }
func (r *RadioGroup) NodeKey() string { return r.Key }
func (r *RadioGroup) Children() []Node {
	out := make([]Node, 0, len(r.Radios))
	for _, radio := range r.Radios {
		out = append(out, radio)
	}
	return out
}

type Radio struct {
	Key     string
	Value   string
	Content string
}

func (*Radio) Kind() Kind         { return KindRadio }
func (r *Radio) NodeKey() string  { return r.Key }
func (r *Radio) Children() []Node { return []Node{String(r.Content)} }

// Row renders a single slot next to its label. Content is never nil when built
// by the renderer.
type Row struct {
	Key     string
	Label   string
	Variant *string
	Content Node
}

func (*Row) Kind() Kind        { return KindRow }
func (r *Row) NodeKey() string { return r.Key }
func (r *Row) Children() []Node {
	if r.Content == nil {
		return nil
	}
	return []Node{r.Content}
}

type Value struct {
	Key   string
	Value string
	Extra string
}

func (*Value) Kind() Kind         { return KindValue }
func (v *Value) NodeKey() string  { return v.Key }
func (v *Value) Children() []Node { return nil }

type Card struct {
	Key         string
	Title       string
	Value       string
	Image       *string
	Description *string
	Extra       *string
}

func (*Card) Kind() Kind         { return KindCard }
func (c *Card) NodeKey() string  { return c.Key }
func (c *Card) Children() []Node { return nil }

// Tooltip content is either a String or a rendered node.
type Tooltip struct {
	Key        string
	TipContent Node
	Content    []Node
}

func (*Tooltip) Kind() Kind         { return KindTooltip }
func (t *Tooltip) NodeKey() string  { return t.Key }
func (t *Tooltip) Children() []Node { return t.Content }

// Skeleton width is a number or a CSS length string.
type Skeleton struct {
	Key          string
	Height       float64
	Width        any
	BorderRadius *string
}

func (*Skeleton) Kind() Kind         { return KindSkeleton }
func (s *Skeleton) NodeKey() string  { return s.Key }
func (s *Skeleton) Children() []Node { return nil }

type Link struct {
	Key     string
	Href    string
	Content []Node
}

func (*Link) Kind() Kind         { return KindLink }
func (l *Link) NodeKey() string  { return l.Key }
func (l *Link) Children() []Node { return l.Content }

// Selector only ever contains *SelectorOption nodes.
type Selector struct {
	Key     string
	Name    string
	Title   *string
	Options []*SelectorOption
}

func (*Selector) Kind() Kind        { return KindSelector }
func (s *Selector) NodeKey() string { return s.Key }
func (s *Selector) Children() []Node {
	out := make([]Node, 0, len(s.Options))
	for _, opt := range s.Options {
		out = append(out, opt)
	}
	return out
}

type SelectorOption struct {
	Key   string
	Value string
	Card  *Card
}

func (*SelectorOption) Kind() Kind        { return KindSelectorOption }
func (o *SelectorOption) NodeKey() string { return o.Key }
func (o *SelectorOption) Children() []Node {
	if o.Card == nil {
		return nil
	}
	return []Node{o.Card}
}
