package cmd

import (
	"fmt"

	"tikictx/internal/config"

	"github.com/spf13/cobra"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write a config file with the current values")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagConfigInit {
		if config.Exists() {
			fmt.Println("  Config file already exists, leaving it untouched.")
		} else {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("  Wrote default config to %s\n", config.ConfigPath())
		}
		fmt.Println()
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ProjectRoot != "" {
		fmt.Printf("    Project root: %s\n", cfg.General.ProjectRoot)
	} else {
		fmt.Println("    Project root: not set (uses current directory)")
	}
	fmt.Printf("    Quiet:        %v\n", cfg.General.Quiet)
	fmt.Println()

	return nil
}
