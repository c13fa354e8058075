package html

import (
	"encoding/base64"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy

	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy

	cssLength = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(px|%|rem|em)$`)
)

// imageSource turns an image src into something safe for an <img> tag: SVG
// markup is sanitised and inlined as a data URI, https and data image URLs
// pass through. Anything else yields "".
func imageSource(src string) string {
	trimmed := strings.TrimSpace(src)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(trimmed, "<svg") || strings.HasPrefix(trimmed, "<?xml"):
		cleaned := sanitizeSVG(trimmed)
		if cleaned == "" {
			return ""
		}
		return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(cleaned))
	case strings.HasPrefix(trimmed, "https://"), strings.HasPrefix(trimmed, "data:image/"):
		return trimmed
	default:
		return ""
	}
}

func sanitizeSVG(raw string) string {
	cleaned := strings.TrimSpace(svgSanitizer().Sanitize(raw))
	if !strings.HasPrefix(cleaned, "<svg") {
		return ""
	}
	return cleaned
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "text", "tspan"}
		policy.AllowElements(append([]string{
			"svg", "g", "title", "desc", "defs", "clipPath", "linearGradient", "radialGradient", "stop",
		}, shapes...)...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "preserveAspectRatio", "role", "aria-hidden",
		).OnElements("svg")

		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width",
			"stroke-linecap", "stroke-linejoin", "fill-rule", "clip-rule",
			"opacity", "transform", "font-size", "font-family", "text-anchor",
		).OnElements(shapes...)

		policy.AllowAttrs("id", "gradientUnits", "x1", "y1", "x2", "y2", "cx", "cy", "r").OnElements("linearGradient", "radialGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")
		policy.AllowAttrs("id").OnElements("clipPath", "defs")
		policy.AllowAttrs("transform", "fill", "clip-path", "opacity").OnElements("g")

		svgPolicy = policy
	})
	return svgPolicy
}

// bodySanitizer is the final pass over the generated body markup. It admits
// the elements and attributes the writer emits and nothing else.
func bodySanitizer() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"div", "section", "p", "span", "strong", "em", "small", "code", "hr",
			"h1", "h2", "h3", "h4", "a", "img", "form", "label", "input", "select",
			"option", "button", "fieldset", "legend",
		)
		policy.AllowAttrs("class", "title", "role", "aria-label", "aria-hidden").Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs("href").OnElements("a")
		policy.AllowURLSchemes("https", "mailto")
		policy.RequireParseableURLs(true)
		policy.RequireNoReferrerOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)

		policy.AllowAttrs("src", "alt").OnElements("img")
		policy.AllowDataURIImages()

		policy.AllowAttrs("name").OnElements("form", "input", "select", "button")
		policy.AllowAttrs("type").Matching(regexp.MustCompile(`^(button|submit|checkbox|radio|text|number|password)$`)).OnElements("input", "button")
		policy.AllowAttrs("value").OnElements("input", "option", "button")
		policy.AllowAttrs("placeholder", "min", "max", "step", "checked").OnElements("input")

		policy.AllowStyles("height", "width", "border-radius").Matching(cssLength).OnElements("div")

		bodyPolicy = policy
	})
	return bodyPolicy
}
