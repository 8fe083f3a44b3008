// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/computor/internal/batch"
	"github.com/pdiddy/computor/internal/history"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Solve every equation listed in a YAML file",
	Long: `Batch reads a YAML file of the form

    equations:
      - "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
      - "3 = 0"

solves each equation, prints per-equation status, and writes the results
to <file>-results.yaml (or --output). Equations that fail to parse are
reported and skipped unless --fail-fast is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output", "", "results file (default: <file>-results.yaml)")
	batchCmd.Flags().Bool("fail-fast", false, "stop at the first equation that fails to parse")

	if err := viper.BindPFlag("batch.output", batchCmd.Flags().Lookup("output")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("batch.fail_fast", batchCmd.Flags().Lookup("fail-fast")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := batch.ReadFile(args[0])
	if err != nil {
		return err
	}

	opts := batch.Options{FailFast: cfg.Batch.FailFast}
	if cfg.History.Enabled {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	summary := batch.Run(context.Background(), f.Equations, opts, cmd.OutOrStdout())

	out := cfg.Batch.Output
	if out == "" {
		out = batch.ResultsPath(args[0])
	}
	if err := batch.WriteResults(out, args[0], summary); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", out)

	if summary.HasFailures() {
		return fmt.Errorf("%d equation(s) failed to parse", summary.Failed)
	}
	return nil
}
