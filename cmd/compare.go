package cmd

import (
	"errors"
	"fmt"
	"os"

	"tikictx/internal/baseline"
	"tikictx/internal/cli"
	"tikictx/internal/compare"
	"tikictx/internal/model"
	"tikictx/internal/targets"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare current command sizes against the saved baseline",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	store := baseline.NewStore(flagRoot)

	base, err := store.Load()
	if errors.Is(err, baseline.ErrNotFound) {
		fmt.Println()
		fmt.Println("  No baseline found.")
		fmt.Println()
		fmt.Println("  Save one first, then re-run the comparison:")
		fmt.Println("    tikictx baseline")
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Measuring command files...\n")
	}
	current := newCollector().Snapshot()

	renderComparison(compare.Compare(base, current))
	return nil
}

func renderComparison(res model.ComparisonResult) {
	fmt.Println()
	fmt.Println(cli.RenderTitle("CONTEXT USAGE COMPARISON"))
	fmt.Println()
	fmt.Printf("  Baseline: %s\n", cli.Muted(dateOf(res.BaselineTimestamp)))
	fmt.Printf("  Current:  %s\n", cli.Muted(dateOf(res.CurrentTimestamp)))
	fmt.Println()

	rows := make([][]string, 0, len(res.Rows)+2)
	for _, r := range res.Rows {
		rows = append(rows, []string{
			r.Name,
			cli.FormatNumber(r.BaselineTokens),
			cli.FormatNumber(r.CurrentTokens),
			cli.FormatSigned(r.Change),
			cli.FormatSignedPct(r.PctChange),
			cli.Indicator(r.Change),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatNumber(res.TotalBaseline),
		cli.FormatNumber(res.TotalCurrent),
		cli.FormatSigned(res.TotalChange),
		cli.FormatSignedPct(res.TotalPctChange),
		cli.Indicator(res.TotalChange),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Command Size Changes",
		Headers: []string{"Command", "Baseline", "Current", "Change", "% Change", " "},
		Rows:    rows,
	}))
	fmt.Println()

	if res.BaselinePromptTokens > 0 || res.CurrentPromptTokens > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Extracted Prompt Files (sub-agent context)",
			Headers: []string{"", "Baseline", "Current", "Change"},
			Rows: [][]string{{
				"Prompt file tokens",
				cli.FormatNumber(res.BaselinePromptTokens),
				cli.FormatNumber(res.CurrentPromptTokens),
				cli.FormatSigned(res.CurrentPromptTokens - res.BaselinePromptTokens),
			}},
		}))
		fmt.Println()
	}

	s := res.Savings
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Effective Savings for /tiki:execute",
		Headers: []string{"Metric", "Before", "After"},
		Rows: [][]string{
			{"Main context tokens", cli.FormatNumber(s.Before), cli.FormatNumber(s.After)},
			{"Remaining for work", cli.FormatNumber(targets.ContextBudget - s.Before), cli.FormatNumber(targets.ContextBudget - s.After)},
			{"---"},
			{"Tokens saved", cli.FormatSigned(s.Saved), ""},
			{"Reduction", cli.FormatSignedPct(s.ReductionPct), ""},
			{"Est. cost saved", cli.FormatUSD(s.CostSavedUSD), ""},
		},
	}))
	fmt.Println()

	switch {
	case s.Saved > 0:
		fmt.Println(cli.Good("  ✓ Refactoring is saving context"))
	case s.Saved == 0:
		fmt.Println(cli.Muted("  • No change vs baseline"))
	default:
		fmt.Println(cli.Bad("  ✗ Context usage increased vs baseline"))
	}
	fmt.Println()
}

func dateOf(timestamp string) string {
	if len(timestamp) > 10 {
		return timestamp[:10]
	}
	return timestamp
}
