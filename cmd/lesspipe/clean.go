package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/lesspipe"
	reporter "github.com/yacobolo/lesspipe/internal/lesspipe"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove previously generated output files",
	Long: `Delete the destination .css file for every source currently present
under the source root. Destinations without a matching source are left
untouched; absent files are skipped, so clean is safe to run repeatedly.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		// Clean never compiles, no transformer needed.
		cleaner := lesspipe.NewCleaner(lesspipe.NewGenerator(config, nil))
		removed, err := cleaner.Clean()
		if err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			r := reporter.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
			r.PrintCleanSummary(removed)
		}
		return nil
	},
}
