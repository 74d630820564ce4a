// Package main is the entry point for the projectledger service. The serve
// command wires all dependencies using samber/do v2, starts the HTTP server,
// and handles graceful shutdown on SIGINT/SIGTERM. The migrate command
// applies the relational schema and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/projectledger/internal/platform/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profile string

	root := &cobra.Command{
		Use:           "projectledger",
		Short:         "Project, milestone and expense category ledger API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile (local, dev, qa, prod); defaults to $APP_PROFILE")

	load := func() (*config.Config, error) {
		if profile == "" {
			return nil, errors.New("APP_PROFILE environment variable or --profile flag is required (e.g. local, dev, qa, prod)")
		}
		cfg, err := config.Load(profile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load()
				if err != nil {
					return err
				}
				return migrate(cmd.Context(), cfg)
			},
		},
	)

	return root
}
