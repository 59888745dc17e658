// Package cmd wires up the tikictx command-line interface.
package cmd

import (
	"os"

	"tikictx/internal/config"
	"tikictx/internal/measure"
	"tikictx/internal/tokenizer"

	"github.com/spf13/cobra"
)

var (
	flagRoot  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "tikictx",
	Short: "Context window usage for Tiki command prompts",
	Long:  "Measure how much of the 200K context window the Tiki command files consume, and compare against a saved baseline.",
	RunE:  runMeasure,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	defaultRoot := cfg.General.ProjectRoot
	if defaultRoot == "" {
		defaultRoot = "."
	}

	rootCmd.PersistentFlags().StringVarP(&flagRoot, "root", "r", defaultRoot, "Project root containing .claude/ and .tiki/")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", cfg.General.Quiet, "Suppress progress output")
}

// newCollector builds the measurement collector shared by all commands.
func newCollector() *measure.Collector {
	return measure.New(flagRoot, tokenizer.Default())
}
