package cmd

import (
	"fmt"
	"os"

	"tikictx/internal/baseline"
	"tikictx/internal/cli"

	"github.com/spf13/cobra"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Save the current snapshot as the comparison baseline",
	RunE:  runBaseline,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}

func runBaseline(_ *cobra.Command, _ []string) error {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Measuring command files...\n")
	}

	snap := newCollector().Snapshot()

	store := baseline.NewStore(flagRoot)
	if err := store.Save(snap); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Baseline saved to %s\n", store.Path())
	fmt.Printf("  %s tokens across %d command files\n", cli.FormatNumber(snap.Totals.AllTokens), snap.Commands.Len())
	fmt.Println()
	return nil
}
