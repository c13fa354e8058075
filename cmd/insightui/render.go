package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-insightui/internal/loader"
	"github.com/goliatone/go-insightui/pkg/render"
	"github.com/goliatone/go-insightui/pkg/schema"
)

type renderFlags struct {
	format string
	output string
	title  string
	root   string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file|url>",
		Short: "Render a UI document from a JSON or YAML file or URL",
		Long: `render loads a payload ({"ui": [...], "severity": ...}) or a bare element
list, renders it with the same rules used for fetched documents and writes the
result with the selected backend.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, a, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output backend (jsx, html, text); defaults to render.backend")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title for the html backend")
	cmd.Flags().StringVar(&flags.root, "root", "", "resolve the document inside this directory; paths may not leave it")
	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, a *app, location string, flags *renderFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := loader.Options{AllowHTTP: true, RequestTimeout: a.cfg.Fetch.Timeout}
	var src schema.Source
	if flags.root != "" {
		opts.FileSystem = os.DirFS(flags.root)
		opts.AllowHTTP = false
		src = schema.SourceFromFS(filepath.ToSlash(location))
	} else {
		parsed, err := schema.ParseSource(location)
		if err != nil {
			return err
		}
		src = parsed
	}

	registry, err := a.registry(flags.output == "")
	if err != nil {
		return err
	}
	backend, err := registry.Resolve(flags.format)
	if err != nil {
		return err
	}

	payload, err := loader.New(opts).LoadPayload(ctx, src)
	if err != nil {
		return fmt.Errorf("load %s: %w", location, err)
	}

	start := time.Now()
	doc := render.Document{
		Content: a.renderer(nil).Render(payload.UI),
		Title:   flags.title,
	}
	if payload.Critical() {
		doc.Severity = schema.SeverityCritical
	}

	out, err := backend.Render(ctx, doc)
	if err != nil {
		return err
	}
	a.logger.Debug("rendered document", "source", location, "backend", backend.Name(), "elements", len(payload.UI), "elapsed", time.Since(start))
	return writeOutput(cmd, flags.output, out)
}
