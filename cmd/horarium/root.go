package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "horarium",
	Short: "Horarium - deterministic horary chart evaluator",
	Long: `Horarium is a deterministic rule-based evaluator for horary astrology charts.

Given a cast chart, it walks a fixed evaluation pipeline and produces:
  - A YES/NO verdict for the queried outcome
  - A clamped confidence score
  - An ordered proof trail naming every rule that fired
  - Optional verdict evidence records for later audit

The same chart always produces the same verdict, confidence, and proof.

For more information, visit: https://github.com/stellium-hq/horarium`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
