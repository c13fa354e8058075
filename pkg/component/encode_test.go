package component

import (
	"encoding/json"
	"testing"
)

func TestEncode_JSXShape(t *testing.T) {
	size := "sm"
	root := &Box{Content: []Node{
		&Heading{Key: "el-0", Size: &size, Content: "Title"},
		&Divider{},
		&Text{Key: "el-2", Content: []Node{String("hello")}},
		&Text{Key: "el-3", Content: []Node{String("a "), &Bold{Key: "el-3-inline-1", Content: "b"}}},
		&Row{Key: "el-4", Label: "To", Content: &Text{Key: "el-4-empty", Content: []Node{String("")}}},
	}}

	data, err := json.Marshal(Encode(root))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"type":"Box","props":{"center":false,"children":[` +
		`{"type":"Heading","props":{"children":"Title","size":"sm"},"key":"el-0"},` +
		`{"type":"Divider","props":{},"key":null},` +
		`{"type":"Text","props":{"children":"hello"},"key":"el-2"},` +
		`{"type":"Text","props":{"children":["a ",{"type":"Bold","props":{"children":"b"},"key":"el-3-inline-1"}]},"key":"el-3"},` +
		`{"type":"Row","props":{"children":{"type":"Text","props":{"children":""},"key":"el-4-empty"},"label":"To"},"key":"el-4"}` +
		`]},"key":null}`
	if string(data) != want {
		t.Fatalf("encode mismatch\nwant %s\ngot  %s", want, data)
	}
}

func TestEncode_OptionalProps(t *testing.T) {
	truncate := false
	enc := Encode(&Address{Key: "a", Address: "0xabc", Truncate: &truncate}).(Element)

	if _, ok := enc.Props["displayName"]; ok {
		t.Fatalf("unset displayName should be omitted")
	}
	if got, ok := enc.Props["truncate"].(bool); !ok || got {
		t.Fatalf("truncate = %v", enc.Props["truncate"])
	}

	skeleton := Encode(&Skeleton{Key: "s", Height: 22}).(Element)
	if _, ok := skeleton.Props["width"]; ok {
		t.Fatalf("nil width should be omitted")
	}
}

func TestWalkHelpers(t *testing.T) {
	root := &Box{Content: []Node{
		&Tooltip{Key: "t", TipContent: String("tip "), Content: []Node{&Text{Key: "x", Content: []Node{String("body")}}}},
		&Dropdown{Key: "d", Options: []*Option{{Key: "o1", Content: "one"}, {Key: "o2", Content: "two"}}},
	}}

	if got := PlainText(root); got != "tip bodyonetwo" {
		t.Fatalf("PlainText = %q", got)
	}
	if got := len(FindAll(root, KindOption)); got != 2 {
		t.Fatalf("FindAll options = %d", got)
	}
	if got := Count(root); got != 6 {
		t.Fatalf("Count = %d, want 6", got)
	}
}
