package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	insightui "github.com/goliatone/go-insightui"
	"github.com/goliatone/go-insightui/internal/config"
	"github.com/goliatone/go-insightui/internal/logging"
	"github.com/goliatone/go-insightui/pkg/fetch"
	"github.com/goliatone/go-insightui/pkg/insight"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/renderer"
	"github.com/goliatone/go-insightui/pkg/renderers/html"
	"github.com/goliatone/go-insightui/pkg/renderers/jsx"
	"github.com/goliatone/go-insightui/pkg/renderers/text"
)

// app holds the configuration and shared dependencies of one command run.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func loadApp(flags *rootFlags) (*app, error) {
	path := flags.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logging.New(level, cfg.Log.Format)}, nil
}

func (a *app) renderer(observer renderer.Observer) *renderer.Renderer {
	opts := []renderer.Option{
		renderer.WithLogger(a.logger),
		renderer.WithMaxDepth(a.cfg.Render.MaxDepth),
	}
	if observer != nil {
		opts = append(opts, renderer.WithObserver(observer))
	}
	return renderer.New(opts...)
}

// registry builds the backends for CLI output. JSON is indented and terminal
// colours follow stdout.
func (a *app) registry(pretty bool) (*render.Registry, error) {
	manifest := html.DefaultTheme()
	if name := a.cfg.Theme.Name; name != "" && name != manifest.Name {
		return nil, fmt.Errorf("theme %q is not available", name)
	}
	for key, value := range a.cfg.Theme.Tokens {
		manifest.Tokens[key] = value
	}

	htmlBackend, err := html.New(
		html.WithThemeManifest(manifest, a.cfg.Theme.Variant),
		html.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	jsxOpts := []jsx.Option{}
	textOpts := []text.Option{}
	if pretty {
		jsxOpts = append(jsxOpts, jsx.WithIndent("  "))
		textOpts = append(textOpts, text.WithDetectedProfile())
	}

	registry := render.NewRegistry()
	for _, b := range []render.Backend{jsx.New(jsxOpts...), htmlBackend, text.New(textOpts...)} {
		if err := registry.Register(b); err != nil {
			return nil, err
		}
	}
	if err := registry.SetDefault(a.cfg.Render.Backend); err != nil {
		return nil, err
	}
	return registry, nil
}

// fetcher builds the document client, backed by redis when configured. The
// returned function releases the redis connection.
func (a *app) fetcher(ctx context.Context) (*fetch.Client, func(), error) {
	opts := []fetch.Option{
		fetch.WithBaseURL(a.cfg.Fetch.BaseURL),
		fetch.WithClientName(a.cfg.Fetch.Client),
		fetch.WithTimeout(a.cfg.Fetch.Timeout),
		fetch.WithLogger(a.logger),
	}
	cleanup := func() {}

	if a.cfg.Redis.Enabled() {
		client := backend.NewClient(&backend.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		cache := fetch.NewRedisCache(client, a.cfg.Redis.Prefix)
		if err := cache.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		opts = append(opts, fetch.WithCache(cache, a.cfg.Fetch.CacheTTL))
		cleanup = func() { _ = client.Close() }
		a.logger.Debug("document cache enabled", "addr", a.cfg.Redis.Addr, "ttl", a.cfg.Fetch.CacheTTL)
	}

	return fetch.New(opts...), cleanup, nil
}

func (a *app) service(fetcher fetch.Fetcher, r *renderer.Renderer, recorder insight.Recorder) (*insight.Service, error) {
	opts := []insight.Option{
		insight.WithRenderer(r),
		insight.WithLogger(a.logger),
	}
	if a.cfg.Render.ErrorMessage != "" {
		opts = append(opts, insight.WithFailureMessage(a.cfg.Render.ErrorMessage))
	}
	if recorder != nil {
		opts = append(opts, insight.WithRecorder(recorder))
	}
	return insight.New(fetcher, opts...)
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			_, err := fmt.Fprintln(out)
			return err
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "insight written to %s\n", path)
	return nil
}

func versionString() string {
	return strings.TrimSpace(insightui.Version)
}
