package html

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName names the built-in manifest.
const DefaultThemeName = "insight"

// DefaultTheme returns the built-in manifest with a light base and a dark
// variant. Severity colours are exposed as --severity-<level> CSS variables.
func DefaultTheme() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"text":             "#24272a",
			"muted":            "#6a737d",
			"background":       "#ffffff",
			"surface":          "#f2f4f6",
			"border":           "#d6d9dc",
			"severity-info":    "#0376c9",
			"severity-success": "#1c8234",
			"severity-warning": "#bf5200",
			"severity-danger":  "#d73847",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"text":       "#ffffff",
					"muted":      "#9fa6ae",
					"background": "#141618",
					"surface":    "#24272a",
					"border":     "#3b4046",
				},
			},
		},
	}
}

// staticSelector serves a single manifest.
type staticSelector struct {
	manifest *theme.Manifest
}

func (s staticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s.manifest == nil {
		return nil, fmt.Errorf("html renderer: no theme manifest")
	}
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("html renderer: theme %q not found", name)
	}
	if variant != "" {
		if _, ok := s.manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("html renderer: theme variant %q not found", variant)
		}
	}
	return &theme.Selection{Theme: s.manifest.Name, Variant: variant, Manifest: s.manifest}, nil
}

// themeConfig resolves a selection into renderer settings, merging variant
// tokens over the base manifest.
func themeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return &theme.RendererConfig{}
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: vars,
	}
}

// cssVarsStyle renders CSS custom properties in key order. Values that could
// break out of the declaration are skipped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := vars[key]
		if strings.ContainsAny(key+value, ";{}<>\"'") {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", key, value)
	}
	return b.String()
}
