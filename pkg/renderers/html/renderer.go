// Package html renders insight documents into a standalone, sanitised HTML
// page styled by a go-theme manifest.
package html

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-insightui/pkg/render"
	rendertemplate "github.com/goliatone/go-insightui/pkg/render/template"
	gotemplate "github.com/goliatone/go-insightui/pkg/render/template/gotemplate"
)

// Name is the registry name of the backend.
const Name = "html"

// DefaultTitle is used when the document carries no title.
const DefaultTitle = "Transaction insight"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	themeName        string
	variant          string
	title            string
	logger           *slog.Logger
}

// WithTemplatesFS supplies an alternate page template bundle. It must contain
// a page.tpl template.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the page template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves the page theme through selector using the given
// theme name and variant.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
		cfg.themeName = strings.TrimSpace(name)
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithThemeManifest serves a single manifest, replacing the built-in theme.
func WithThemeManifest(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		if manifest == nil {
			return
		}
		cfg.selector = staticSelector{manifest: manifest}
		cfg.themeName = manifest.Name
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithVariant picks a variant of the configured theme.
func WithVariant(variant string) Option {
	return func(cfg *config) {
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithTitle sets the page title used when the document has none.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title = strings.TrimSpace(title); title != "" {
			cfg.title = title
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer is the HTML page backend.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	selector  theme.ThemeSelector
	themeName string
	variant   string
	title     string
	logger    *slog.Logger
}

var _ render.Backend = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		selector:   staticSelector{manifest: DefaultTheme()},
		themeName:  DefaultThemeName,
		title:      DefaultTitle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		selector:  cfg.selector,
		themeName: cfg.themeName,
		variant:   cfg.variant,
		title:     cfg.title,
		logger:    cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes doc as a full HTML page.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	selection, err := r.selector.Select(r.themeName, r.variant)
	if err != nil {
		return nil, fmt.Errorf("html renderer: select theme: %w", err)
	}
	cfg := themeConfig(selection)

	body := Body(doc)
	title := doc.Title
	if title == "" {
		title = r.title
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":    title,
		"body":     body,
		"css_vars": cssVarsStyle(cfg.CSSVars),
		"critical": doc.Critical(),
		"severity": doc.Severity,
		"theme":    cfg.Theme,
		"variant":  cfg.Variant,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	r.logger.Debug("rendered html page", "theme", cfg.Theme, "variant", cfg.Variant, "bytes", len(result))
	return []byte(result), nil
}

// Body returns the sanitised markup for the document content without the
// surrounding page.
func Body(doc render.Document) string {
	if doc.Content == nil {
		return ""
	}
	w := &writer{}
	w.node(doc.Content)
	return bodySanitizer().Sanitize(w.b.String())
}
