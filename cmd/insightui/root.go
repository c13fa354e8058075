package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "insightui",
		Short: "Render transaction insight UI documents",
		Long: `insightui fetches untrusted UI documents for a transaction target,
renders them into the constrained component tree a wallet host displays and
writes the result as snaps JSON, an HTML preview or terminal text.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (.yaml, .yml or .toml); defaults to $INSIGHTUI_CONFIG")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format override (text, json)")

	cmd.AddCommand(
		newRenderCmd(flags),
		newFetchCmd(flags),
		newServeCmd(flags),
		newVersionCmd(),
	)
	return cmd
}
