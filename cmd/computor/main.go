// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the computor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/computor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd solves the equation given as its single argument.
var rootCmd = &cobra.Command{
	Use:   `computor "<equation>"`,
	Short: "Reduce and solve polynomial equations of degree 2 or less",
	Long: `computor parses a polynomial equation in X, such as

    computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"

prints its reduced form "P(X) = 0" and its degree, and solves it when the
degree is 2 or less. Terms are "<num> * X^<n>", "X^<n>", "X" or a bare number.
Put "--" before an equation that starts with a minus sign.

Use the batch subcommand to solve every equation in a YAML file, and the
history subcommand to list or export previously solved equations.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runSolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./computor.yaml or ~/.config/computor/config.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory for the history database (default .computor)")
	rootCmd.PersistentFlags().Bool("history", true, "record solved equations in the history database")
	rootCmd.PersistentFlags().Bool("json", false, "output results as JSON")

	bindFlag("history.dir", "history-dir")
	bindFlag("history.enabled", "history")
	bindFlag("output.json", "json")

	defaults := types.DefaultConfig()
	viper.SetDefault("history.dir", defaults.History.Dir)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("history.max_results", defaults.History.MaxResults)
	viper.SetDefault("output.json", defaults.Output.JSON)
	viper.SetDefault("batch.output", defaults.Batch.Output)
	viper.SetDefault("batch.fail_fast", defaults.Batch.FailFast)
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("computor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "computor"))
		}
	}

	viper.SetEnvPrefix("COMPUTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration: defaults, then config
// file, then environment, then flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
