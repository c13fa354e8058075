package jsx_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/renderer"
	"github.com/goliatone/go-insightui/pkg/renderers/jsx"
	"github.com/goliatone/go-insightui/pkg/testsupport"
)

func TestRenderer_Contract(t *testing.T) {
	backend := jsx.New()
	if backend.Name() != "jsx" || backend.ContentType() != "application/json" {
		t.Fatalf("unexpected backend identity %q %q", backend.Name(), backend.ContentType())
	}
}

func TestRenderer_Render(t *testing.T) {
	elements := testsupport.MustDecodeElements(t, `[{"type": "heading", "props": {"children": "Hi"}}, {"type": "divider"}]`)
	doc := render.Document{Content: renderer.RenderUI(elements), Severity: "critical"}

	out, err := jsx.New().Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `{"content":{"type":"Box","props":{"center":false,"children":[` +
		`{"type":"Heading","props":{"children":"Hi"},"key":"el-0"},` +
		`{"type":"Divider","props":{},"key":null}]},"key":null},"severity":"critical"}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_DropsNonCriticalSeverity(t *testing.T) {
	out, err := jsx.New().Render(context.Background(), render.Document{Severity: "warning"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := decoded["severity"]; ok {
		t.Fatalf("non critical severity should be omitted: %s", out)
	}
}

func TestRenderer_FixtureGolden(t *testing.T) {
	payload := testsupport.LoadPayload(t, testsupport.FixturePath("../../..", "insight.json"))
	doc := render.Document{Content: renderer.RenderUI(payload.UI), Severity: payload.Severity}

	out, err := jsx.New(jsx.WithIndent("  ")).Render(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	golden := filepath.Join("testdata", "insight.golden.json")
	if testsupport.WriteMaybeGolden(t, golden, out) {
		return
	}

	var want, got any
	if err := json.Unmarshal(testsupport.MustReadGolden(t, golden), &want); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := jsx.New().Render(ctx, render.Document{}); err == nil {
		t.Fatalf("expected context error")
	}
}
