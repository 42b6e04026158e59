package main

import (
	"fmt"

	"freight-console/internal/core/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "freightctl",
		Short:        "Inspect freight order records and build carrier BOL requests",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != outputJSON && opts.output != outputYAML {
				return fmt.Errorf("unsupported output format %q (want json or yaml)", opts.output)
			}
			return logger.Init("development", opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	cmd.AddCommand(
		newNormalizeCmd(opts),
		newClassifyCmd(opts),
		newSummarizeCmd(opts),
		newTrackingNumberCmd(opts),
		newResolveCmd(opts),
		newBolCmd(opts),
	)
	return cmd
}
