package text

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/render"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestRenderer_Outline(t *testing.T) {
	doc := render.Document{
		Severity: "critical",
		Content: &component.Box{Content: []component.Node{
			&component.Heading{Content: "Swap"},
			&component.Banner{Title: "Warning", Severity: "danger", Content: []component.Node{
				&component.Text{Content: []component.Node{
					component.String("Unverified "),
					&component.Bold{Content: "contract"},
				}},
				&component.Link{Href: "https://example.com", Content: []component.Node{component.String("details")}},
			}},
			&component.Divider{},
			&component.Section{Content: []component.Node{
				&component.Row{Label: "To", Content: &component.Address{Address: "eip155:1:0xabc"}},
				&component.Row{Label: "Fee", Variant: strPtr("warning"), Content: &component.Value{Value: "0.1 ETH", Extra: "$300"}},
			}},
			&component.Tooltip{
				TipContent: component.String("more"),
				Content:    []component.Node{&component.Icon{Name: "info"}},
			},
			&component.Copyable{Value: "secret", Sensitive: boolPtr(true)},
		}},
	}

	out, err := New().Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"! CRITICAL",
		"Swap",
		"[DANGER] Warning",
		"  Unverified contract",
		"  details <https://example.com>",
		strings.Repeat("─", 24),
		"section",
		"  To: address: eip155:1:0xabc",
		"  Fee: 0.1 ETH ($300)",
		"tooltip: more",
		"  [icon: info]",
		"copy: ********",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Controls(t *testing.T) {
	doc := render.Document{Content: &component.Box{Content: []component.Node{
		&component.Form{Name: "f", Content: []component.Node{
			&component.Field{Label: "Speed", Control: &component.RadioGroup{Name: "speed", Radios: []*component.Radio{
				{Value: "fast", Content: "Fast"},
			}}},
			&component.Field{Label: "Token", Control: &component.Dropdown{Name: "token", Options: []*component.Option{
				{Value: "eth", Content: "Ether"},
			}}},
			&component.Input{Name: "amount", Placeholder: strPtr("0.0")},
			&component.Checkbox{Name: "agree", Checked: boolPtr(true), Label: strPtr("I agree")},
			&component.Button{Content: []component.Node{component.String("Submit")}},
		}},
		&component.Selector{Name: "acct", Title: strPtr("Account"), Options: []*component.SelectorOption{
			{Value: "a", Card: &component.Card{Title: "Main", Value: "1 ETH"}},
		}},
	}}}

	out, err := New().Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"form f",
		"  Speed:",
		"    radio speed",
		"      ( ) Fast (fast)",
		"  Token:",
		"    select token",
		"      - Ether (eth)",
		"  input amount <0.0>",
		"  [x] I agree",
		"  [ Submit ]",
		"selector acct: Account",
		"  ( ) Main: 1 ETH",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_ColourProfile(t *testing.T) {
	doc := render.Document{Content: &component.Box{Content: []component.Node{
		&component.Heading{Content: "Title"},
	}}}

	plain, err := New().Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(plain), "\x1b[") {
		t.Fatalf("ascii profile emitted escape sequences: %q", plain)
	}

	styled, err := New(WithProfile(termenv.ANSI256)).Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(styled), "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", styled)
	}
}

func TestRenderer_EmptyDocument(t *testing.T) {
	r := New()
	if r.Name() != Name || !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected identity %q %q", r.Name(), r.ContentType())
	}
	out, err := r.Render(context.Background(), render.Document{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}
