package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementUnmarshal_Tolerant(t *testing.T) {
	var el Element
	raw := `{"type": "box", "props": {"center": true}, "children": ["a", {"type": "text"}, null, 4, {"type": 9}]}`
	if err := json.Unmarshal([]byte(raw), &el); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if el.Type != "box" || !el.Props.Bool("center", false) {
		t.Fatalf("unexpected element header %+v", el)
	}
	if len(el.Children) != 5 {
		t.Fatalf("expected 5 child slots, got %d", len(el.Children))
	}
	if !el.Children[0].IsText() || el.Children[0].Text() != "a" {
		t.Fatalf("expected text child, got %+v", el.Children[0])
	}
	if nested, ok := el.Children[1].Element(); !ok || nested.Type != "text" {
		t.Fatalf("expected nested text element, got %+v", el.Children[1])
	}
	if !el.Children[2].IsEmpty() || !el.Children[3].IsEmpty() {
		t.Fatalf("expected null and number children to be empty slots")
	}
	if nested, ok := el.Children[4].Element(); !ok || nested.Type != "" {
		t.Fatalf("expected element with empty type, got %+v", el.Children[4])
	}
}

func TestElementUnmarshal_MistypedMembers(t *testing.T) {
	var el Element
	if err := json.Unmarshal([]byte(`{"type": ["x"], "props": [1], "children": {"a": 1}}`), &el); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if el.Type != "" || el.Props != nil || el.Children != nil {
		t.Fatalf("expected zero element, got %+v", el)
	}
}

func TestPayloadUnmarshal_Severity(t *testing.T) {
	cases := map[string]struct {
		raw      string
		severity string
		critical bool
	}{
		"absent":   {raw: `{"ui": []}`},
		"null":     {raw: `{"ui": [], "severity": null}`},
		"critical": {raw: `{"ui": [], "severity": "critical"}`, severity: "critical", critical: true},
		"other":    {raw: `{"ui": [], "severity": "warning"}`, severity: "warning"},
		"number":   {raw: `{"ui": [], "severity": 3}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var payload Payload
			if err := json.Unmarshal([]byte(tc.raw), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if payload.Severity != tc.severity || payload.Critical() != tc.critical {
				t.Fatalf("severity = %q critical = %v", payload.Severity, payload.Critical())
			}
		})
	}
}

func TestChild_MarshalRoundTripShape(t *testing.T) {
	el := Element{
		Type:     TypeText,
		Children: []Child{TextChild("hi"), ElementChild(Element{Type: TypeBold}), {}},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"text","children":["hi",{"type":"bold"},null]}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}
}

func TestElementFromValue(t *testing.T) {
	value := map[string]any{
		"type":     "text",
		"props":    map[string]any{"children": "tip"},
		"children": []any{"a", map[string]any{"type": "bold"}, 5},
	}

	got, ok := ElementFromValue(value)
	if !ok {
		t.Fatalf("expected element")
	}
	want := Element{
		Type:     "text",
		Props:    Props{"children": "tip"},
		Children: []Child{TextChild("a"), ElementChild(Element{Type: "bold"}), {}},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Child{})); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []any{nil, "text", map[string]any{"type": 1}, []any{}} {
		if _, ok := ElementFromValue(bad); ok {
			t.Fatalf("expected %#v to be rejected", bad)
		}
	}
}

func TestDecodeDocument(t *testing.T) {
	yamlDoc := MustNewDocument(SourceFromFile("fixtures/warning.yaml"), []byte(`
severity: critical
ui:
  - type: heading
    props:
      children: Warning
  - type: row
    props:
      label: To
    children:
      - type: address
        props:
          address: "0x1234567890abcdef1234567890abcdef12345678"
`))

	payload, err := DecodeDocument(yamlDoc)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if !payload.Critical() || len(payload.UI) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	row := payload.UI[1]
	addr, ok := row.Children[0].Element()
	if !ok || addr.Props.String("address", "") != "0x1234567890abcdef1234567890abcdef12345678" {
		t.Fatalf("unexpected row child %+v", row.Children)
	}

	jsonDoc := MustNewDocument(SourceFromURL("https://example.com/doc.json?x=1"), []byte(`[{"type": "divider"}]`))
	payload, err = DecodeDocument(jsonDoc)
	if err != nil {
		t.Fatalf("decode json list: %v", err)
	}
	if len(payload.UI) != 1 || payload.UI[0].Type != TypeDivider {
		t.Fatalf("unexpected payload %+v", payload)
	}

	if _, err := DecodeDocument(MustNewDocument(SourceFromFile("bad.json"), []byte(`{`))); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDocument_IsYAML(t *testing.T) {
	cases := map[string]bool{
		"a.yaml":                       true,
		"dir/b.YML":                    true,
		"c.json":                       false,
		"https://x.test/d.yaml?raw=1":  true,
		"https://x.test/api#frag.yaml": false,
	}
	for location, want := range cases {
		doc := MustNewDocument(SourceFromFS(location), []byte("x"))
		if got := doc.IsYAML(); got != want {
			t.Fatalf("IsYAML(%q) = %v, want %v", location, got, want)
		}
	}
}
