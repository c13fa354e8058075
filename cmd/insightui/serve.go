package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-insightui/internal/metrics"
	"github.com/goliatone/go-insightui/internal/server"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve insights and document previews over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			m := metrics.New()
			r := a.renderer(m)

			fetcher, cleanup, err := a.fetcher(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc, err := a.service(fetcher, r, m)
			if err != nil {
				return err
			}
			registry, err := a.registry(false)
			if err != nil {
				return err
			}

			srv, err := server.New(svc, registry,
				server.WithLogger(a.logger),
				server.WithMetrics(m),
				server.WithVersion(versionString()),
				server.WithElementTypes(r.Types()),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address; overrides server.addr")
	return cmd
}
