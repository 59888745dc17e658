package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"tikictx/internal/cli"
	"tikictx/internal/model"
	"tikictx/internal/targets"

	"github.com/spf13/cobra"
)

var flagJSON bool

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure command file sizes and context usage",
	RunE:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the snapshot as JSON instead of a report")
	measureCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the snapshot as JSON instead of a report")
}

func runMeasure(_ *cobra.Command, _ []string) error {
	if !flagQuiet && !flagJSON {
		fmt.Fprintf(os.Stderr, "  Measuring command files...\n")
	}

	snap := newCollector().Snapshot()

	if flagJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	renderSnapshot(snap)
	return nil
}

func renderSnapshot(snap *model.Snapshot) {
	date := snap.Timestamp
	if len(date) > 10 {
		date = date[:10]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TIKI COMMAND CONTEXT  " + date))
	fmt.Println()

	// Large commands
	rows := make([][]string, 0, snap.Commands.Len()+2)
	for pair := snap.Commands.Oldest(); pair != nil; pair = pair.Next() {
		m := pair.Value
		rows = append(rows, []string{
			pair.Key,
			cli.FormatNumber(m.Lines),
			cli.FormatNumber(m.Tokens),
			cli.FormatPct(m.PctOf200K),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatNumber(snap.Totals.AllLines),
		cli.FormatNumber(snap.Totals.AllTokens),
		cli.FormatPct(float64(snap.Totals.AllTokens) / targets.ContextBudget * 100),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Large Commands",
		Headers: []string{"Command", "Lines", "Tokens", "% of 200K"},
		Rows:    rows,
	}))
	fmt.Println()

	// Typical invocation breakdown
	inv := snap.ExecuteInvocation
	invRows := make([][]string, 0, inv.Components.Len()+4)
	for pair := inv.Components.Oldest(); pair != nil; pair = pair.Next() {
		invRows = append(invRows, []string{pair.Key, cli.FormatNumber(pair.Value)})
	}
	invRows = append(invRows, []string{"---"})
	invRows = append(invRows, []string{"Total before work begins", cli.FormatNumber(inv.TotalTokens)})
	invRows = append(invRows, []string{"Remaining for actual work", cli.FormatNumber(inv.Remaining)})
	invRows = append(invRows, []string{"Context used", cli.FormatPct(inv.PctUsed)})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Typical /tiki:execute Invocation",
		Headers: []string{"Component", "Tokens"},
		Rows:    invRows,
	}))
	if inv.PctUsed >= 50 {
		fmt.Println(cli.Warn("  Over half the context window is spent before work begins"))
	}
	fmt.Println()

	// Extracted prompt files
	if snap.PromptFiles.Len() == 0 {
		fmt.Println(cli.Muted("  No extracted prompt files found yet"))
	} else {
		for pair := snap.PromptFiles.Oldest(); pair != nil; pair = pair.Next() {
			dm := pair.Value
			fileRows := make([][]string, 0, dm.Files.Len()+2)
			for fp := dm.Files.Oldest(); fp != nil; fp = fp.Next() {
				fileRows = append(fileRows, []string{
					fp.Key,
					cli.FormatNumber(fp.Value.Lines),
					cli.FormatNumber(fp.Value.Tokens),
				})
			}
			fileRows = append(fileRows, []string{"---"})
			fileRows = append(fileRows, []string{
				"TOTAL",
				cli.FormatNumber(dm.TotalLines),
				cli.FormatNumber(dm.TotalTokens),
			})

			fmt.Print(cli.RenderTable(cli.Table{
				Title:   pair.Key,
				Headers: []string{"File", "Lines", "Tokens"},
				Rows:    fileRows,
			}))
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println(cli.Muted("  Save a baseline for comparison:  tikictx baseline"))
	fmt.Println()
}
