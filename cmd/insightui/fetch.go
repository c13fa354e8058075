package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-insightui/internal/prompt"
	"github.com/goliatone/go-insightui/pkg/insight"
	"github.com/goliatone/go-insightui/pkg/render"
)

type fetchFlags struct {
	address  string
	origin   string
	chainID  string
	format   string
	output   string
	noPrompt bool
}

func newFetchCmd(root *rootFlags) *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and render the insight for a transaction target",
		Long: `fetch asks the address info service about a transaction target and renders
the returned document. Missing flags are prompted for unless --no-prompt is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			var driver prompt.Driver
			if !flags.noPrompt {
				driver = prompt.NewSurveyDriver()
			}
			return runFetch(cmd.Context(), cmd, a, driver, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.address, "address", "a", "", "transaction target (hex address or CAIP-10 account id)")
	cmd.Flags().StringVar(&flags.origin, "origin", "", "dapp origin URL")
	cmd.Flags().StringVar(&flags.chainID, "chain-id", "", "CAIP-2 chain id, e.g. eip155:1")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output backend (jsx, html, text); defaults to render.backend")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.noPrompt, "no-prompt", false, "fail instead of prompting for missing values")
	return cmd
}

func runFetch(ctx context.Context, cmd *cobra.Command, a *app, driver prompt.Driver, flags *fetchFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tx := insight.Transaction{To: flags.address, Origin: flags.origin, ChainID: flags.chainID}
	if driver == nil {
		if missing := missingFields(tx); len(missing) > 0 {
			return fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
	}
	if driver != nil {
		var err error
		if tx, err = prompt.AskTransaction(ctx, driver, tx); err != nil {
			return err
		}
	}

	registry, err := a.registry(flags.output == "")
	if err != nil {
		return err
	}
	backend, err := registry.Resolve(flags.format)
	if err != nil {
		return err
	}

	fetcher, cleanup, err := a.fetcher(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := a.service(fetcher, a.renderer(nil), nil)
	if err != nil {
		return err
	}

	resp := svc.OnTransaction(ctx, tx)
	if resp.Reason != "" {
		a.logger.Warn("showing error document", "reason", resp.Reason)
	}

	out, err := backend.Render(ctx, render.Document{Content: resp.Content, Severity: resp.Severity})
	if err != nil {
		return err
	}
	return writeOutput(cmd, flags.output, out)
}

func missingFields(tx insight.Transaction) []string {
	var missing []string
	if tx.To == "" {
		missing = append(missing, "--address")
	}
	if tx.Origin == "" {
		missing = append(missing, "--origin")
	}
	if tx.ChainID == "" {
		missing = append(missing, "--chain-id")
	}
	return missing
}
