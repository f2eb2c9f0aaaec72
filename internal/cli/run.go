package cli

import (
	"github.com/go-sif/tidy/logging"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a cleaning pipeline",
		Long: `Loads the input described by a pipeline file, applies its steps in order and writes the result.

Row-local steps (remove_links, remove_names, remove_email_signatures, lemmatize, replace and
make_uuid) are applied in chunks when batch.num_splits is set, with rows grouped by the
distinct values of batch.identifier.`,
		Example: `  # Run a pipeline
  tidy run --config pipeline.yaml

  # Run a pipeline with debug logging
  tidy run --config pipeline.yaml --log-level debug`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := LoadPipeline(configPath)
			if err != nil {
				return err
			}
			if p.LogLevel != "" && !cmd.Flags().Changed("log-level") {
				logging.Init(p.LogLevel, cmd.ErrOrStderr())
			}
			runner := CreateRunner(p, nil)
			t, err := runner.Run()
			if err != nil {
				return err
			}
			if err := runner.Write(t, cmd.OutOrStdout()); err != nil {
				return err
			}
			logger := logging.Logger("cli")
			logger.Info().
				Str("path", p.Output.Path).
				Int("rows", t.NumRows()).
				Dur("runtime", runner.Stats().GetRuntime()).
				Ints64("partitions", runner.Stats().GetNumPartitionsProcessed()).
				Msg("wrote output")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the pipeline YAML file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
