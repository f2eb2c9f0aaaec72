// Package cli implements the tidy command line: running YAML-configured cleaning pipelines
// over delimited or JSON lines files.
package cli

import (
	"github.com/go-sif/tidy/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root Cobra command for the tidy CLI
func NewRootCmd(ver string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "tidy",
		Short:         "Clean text and tabular data",
		Long:          "tidy: load delimited or JSON lines data, run cleaning steps over it in chunks, and write the result",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Init(logLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.AddCommand(newRunCmd(), newVersionCmd(ver))

	return cmd
}
