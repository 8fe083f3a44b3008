// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/computor/internal/history"
	"github.com/pdiddy/computor/internal/poly"
	"github.com/pdiddy/computor/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export previously solved equations",
	Long: `History manages the local SQLite database of solved equations. Every
successful solve is recorded unless --history=false is given.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently solved equations",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, opts, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput := viper.GetBool("output.json")
	return formatHistoryOutput(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatHistoryOutput(w io.Writer, entries []history.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No equations recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-40s  %-6s  %-11s  %-24s  %s\n",
		"Equation", "Degree", "Outcome", "Roots", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	for _, e := range entries {
		eq := e.Equation
		if len(eq) > 40 {
			eq = eq[:37] + "..."
		}
		roots := make([]string, len(e.Roots))
		for i, r := range e.Roots {
			roots[i] = poly.FormatFloat(r)
		}
		fmt.Fprintf(w, "%-40s  %-6d  %-11s  %-24s  %d\n",
			eq, e.Degree, e.Outcome, strings.Join(roots, ", "), e.Count)
	}

	fmt.Fprintf(w, "\n%d equations\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to YAML or JSON",
	Long: `Export writes the full history (or a filtered subset) to
<history-dir>/export.yaml or export.json, or to --output.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	store, opts, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), output, opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), output, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openHistory(cmd *cobra.Command) (*history.Store, history.ListOptions, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, history.ListOptions{}, err
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, history.ListOptions{}, err
	}
	return store, listOptsFromFlags(cmd), nil
}

func listOptsFromFlags(cmd *cobra.Command) history.ListOptions {
	outcome, _ := cmd.Flags().GetString("outcome")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := history.ListOptions{
		Outcome:    types.Outcome(outcome),
		MaxResults: limit,
	}
	if cmd.Flags().Changed("degree") {
		degree, _ := cmd.Flags().GetInt("degree")
		opts.Degree = &degree
	}
	return opts
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("outcome", "", "filter by outcome: roots, no_solution, infinite, unsolvable")
		c.Flags().Int("degree", 0, "filter by polynomial degree")
		c.Flags().Int("limit", 0, "maximum entries (0 = default for list, all for export)")
	}

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("output", "", "export file path")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
