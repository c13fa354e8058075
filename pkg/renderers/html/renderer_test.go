package html

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/render"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func sampleDocument() render.Document {
	return render.Document{
		Content: &component.Box{Content: []component.Node{
			&component.Heading{Key: "el-0", Content: "Hello"},
			&component.Text{Key: "el-1", Content: []component.Node{
				component.String("<script>alert(1)</script>"),
				&component.Bold{Key: "el-1-inline-1", Content: "bold"},
			}},
			&component.Image{Key: "el-2", Src: `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><circle r="4"/></svg>`, Alt: "logo"},
			&component.Banner{Key: "el-3", Title: "Heads up", Severity: "warning", Content: []component.Node{
				&component.Text{Key: "el-3-banner-0", Content: []component.Node{component.String("careful")}},
			}},
		}},
	}
}

func TestRenderer_RenderPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if r.Name() != Name {
		t.Fatalf("name = %q", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("content type = %q", r.ContentType())
	}

	out, err := r.Render(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<title>Transaction insight</title>",
		`data-theme="insight"`,
		"--severity-danger: #d73847;",
		">Hello</h2>",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"<strong",
		"data:image/svg+xml;base64,",
		`class="iu-banner iu-severity-warning"`,
		"Heads up",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q\n%s", want, page)
		}
	}
	if strings.Contains(page, "<script") {
		t.Fatalf("page contains raw script tag:\n%s", page)
	}
	if strings.Contains(page, "onload") {
		t.Fatalf("svg handler survived sanitising:\n%s", page)
	}
	if strings.Contains(page, "iu-root iu-critical") {
		t.Fatalf("non critical document marked critical")
	}
}

func TestRenderer_CriticalSeverity(t *testing.T) {
	r, err := New(WithTitle("Insight preview"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	doc := sampleDocument()
	doc.Severity = "critical"

	out, err := r.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)
	for _, want := range []string{"iu-root iu-critical", ">Critical</p>", "<title>Insight preview</title>"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderer_DocumentTitleWins(t *testing.T) {
	r, err := New(WithTitle("fallback"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	doc := sampleDocument()
	doc.Title = "Swap <details>"

	out, err := r.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Swap &lt;details&gt;</title>") {
		t.Fatalf("expected escaped document title, got:\n%s", out)
	}
}

func TestRenderer_DarkVariant(t *testing.T) {
	r, err := New(WithVariant("dark"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)
	for _, want := range []string{"--background: #141618;", `data-variant="dark"`, "--severity-info: #0376c9;"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderer_UnknownTheme(t *testing.T) {
	r, err := New(WithThemeSelector(staticSelector{manifest: DefaultTheme()}, "missing", ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), sampleDocument()); err == nil {
		t.Fatal("expected error for unknown theme")
	}

	r, err = New(WithVariant("sepia"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), sampleDocument()); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestRenderer_CustomManifest(t *testing.T) {
	manifest := DefaultTheme()
	manifest.Name = "brand"
	manifest.Tokens["background"] = "#000000"

	r, err := New(WithThemeManifest(manifest, ""))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `data-theme="brand"`) || !strings.Contains(string(out), "--background: #000000;") {
		t.Fatalf("custom manifest not applied:\n%s", out)
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, sampleDocument()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBody_Links(t *testing.T) {
	body := Body(render.Document{Content: &component.Box{Content: []component.Node{
		&component.Link{Key: "a", Href: "https://example.com/docs", Content: []component.Node{component.String("docs")}},
		&component.Link{Key: "b", Href: "javascript:alert(1)", Content: []component.Node{component.String("bad")}},
	}}})

	if !strings.Contains(body, `href="https://example.com/docs"`) {
		t.Fatalf("https link dropped: %s", body)
	}
	if !strings.Contains(body, "noreferrer") {
		t.Fatalf("expected noreferrer on links: %s", body)
	}
	if strings.Contains(body, "javascript") {
		t.Fatalf("javascript href survived: %s", body)
	}
	if !strings.Contains(body, "bad") {
		t.Fatalf("link text should be kept: %s", body)
	}
}

func TestBody_Controls(t *testing.T) {
	body := Body(render.Document{Content: &component.Box{Content: []component.Node{
		&component.Copyable{Key: "c", Value: "seed words", Sensitive: boolPtr(true)},
		&component.Checkbox{Key: "cb", Name: "agree", Checked: boolPtr(true), Variant: "toggle", Label: strPtr("Agree")},
		&component.RadioGroup{Key: "rg", Name: "speed", Radios: []*component.Radio{
			{Key: "rg-r-0", Value: "fast", Content: "Fast"},
		}},
		&component.Skeleton{Key: "sk", Height: 22, Width: "100%", BorderRadius: strPtr("full")},
	}}})

	if strings.Contains(body, "seed words") {
		t.Fatalf("sensitive value leaked: %s", body)
	}
	for _, want := range []string{
		`data-sensitive="true"`,
		`type="checkbox"`,
		`checked="checked"`,
		`name="speed"`,
		`value="fast"`,
		"height: 22px",
		"width: 100%",
		"border-radius: 50%",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\n%s", want, body)
		}
	}
}

func TestBody_Empty(t *testing.T) {
	if got := Body(render.Document{}); got != "" {
		t.Fatalf("expected empty body, got %q", got)
	}
}

func TestDisplayAddress(t *testing.T) {
	cases := []struct {
		in       string
		truncate bool
		want     string
	}{
		{"0x1234567890abcdef1234567890abcdef12345678", true, "0x1234...5678"},
		{"0x1234567890abcdef1234567890abcdef12345678", false, "0x1234567890abcdef1234567890abcdef12345678"},
		{"eip155:1:0x1234567890abcdef1234567890abcdef12345678", true, "0x1234...5678"},
		{"0xabc", true, "0xabc"},
	}
	for _, tc := range cases {
		if got := displayAddress(tc.in, tc.truncate); got != tc.want {
			t.Errorf("displayAddress(%q, %v) = %q, want %q", tc.in, tc.truncate, got, tc.want)
		}
	}
}

func TestImageSource(t *testing.T) {
	if got := imageSource("http://insecure.example/logo.png"); got != "" {
		t.Fatalf("plain http image should be rejected, got %q", got)
	}
	if got := imageSource("https://cdn.example/logo.png"); got != "https://cdn.example/logo.png" {
		t.Fatalf("https image = %q", got)
	}
	if got := imageSource("<svg><script>alert(1)</script></svg>"); !strings.HasPrefix(got, "data:image/svg+xml;base64,") {
		t.Fatalf("svg image = %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": "2", "--a": "1", "--bad": "red;}"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("cssVarsStyle = %q", got)
	}
}
