// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/computor/internal/equation"
	"github.com/pdiddy/computor/internal/history"
	"github.com/pdiddy/computor/pkg/types"
)

const usageExample = `computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"`

var solveCmd = &cobra.Command{
	Use:   `solve "<equation>"`,
	Short: "Reduce and solve one polynomial equation",
	Long: `Solve prints the reduced form of the equation, its degree, and its real
solutions. Equations of degree 3 or more are reduced but not solved.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("wrong number of arguments: expected 1 equation, got %d\nUsage: %s", len(args), usageExample)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r, err := equation.Solve(args[0])
	if err != nil {
		return fmt.Errorf("parsing polynomial equation: %w", err)
	}

	if cfg.History.Enabled {
		recordResult(cmd.Context(), cfg.History, r)
	}

	return writeResult(cmd.OutOrStdout(), r, cfg.Output.JSON)
}

// recordResult stores r in the history database. Failures are warnings: the
// solve itself has already succeeded.
func recordResult(ctx context.Context, cfg types.HistoryConfig, r types.Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, r); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

func writeResult(w io.Writer, r types.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return equation.WriteReport(w, r)
}
