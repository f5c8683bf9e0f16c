package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lesspipe",
	Short: "Compile LESS/CSS source trees into served stylesheets",
	Long: `Compile a tree of stylesheet sources into a parallel tree of CSS files.
Sources are discovered recursively, run through the LESS compiler,
post-processed (compression, attribution headers, concatenation) and
placed deterministically under the destination root.`,
	// Default behavior: run parse when no subcommand is given.
	// We must call loadConfig here because PreRunE of parseCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runParse(parseCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".lesspipe.yaml", "Config file path")
	rootCmd.PersistentFlags().String("profile", "development", "Deployment profile: development|production")
	rootCmd.PersistentFlags().String("source-path", "", "Source root directory")
	rootCmd.PersistentFlags().String("destination-path", "", "Destination root directory")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
