package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/lesspipe"
	reporter "github.com/yacobolo/lesspipe/internal/lesspipe"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Compile every stylesheet source under the source root",
	Long: `Discover all sources under the source root (sorted by path), compile
each one and write its CSS under the destination root. The first compile
failure aborts the run; pass --keep-going to compile what you can and
report every failure at the end.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.Bool("compression", false, "Strip every newline from generated output")
	f.Bool("header", false, "Prepend the attribution banner to generated output")
	f.String("concat", "", "Also write a concatenated output with this name")
	f.Int("workers", 0, "Compile worker count (0 = sequential)")
	f.Bool("keep-going", false, "Collect compile failures instead of aborting on the first")
}

func runParse(cmd *cobra.Command, _ []string) error {
	config, err := buildConfig()
	if err != nil {
		return err
	}

	transformer, err := lesspipe.NewLessTransformer()
	if err != nil {
		return err
	}
	gen := lesspipe.NewGenerator(config, transformer)

	keepGoing := false
	if cmd != nil {
		keepGoing, _ = cmd.Flags().GetBool("keep-going")
	}

	var result *lesspipe.ParseResult
	if keepGoing {
		result, err = gen.ParseAll()
	} else {
		result, err = gen.Parse()
	}
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		r := reporter.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
		r.PrintParseSummary(parseSummary(result))
	}

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
	return nil
}

// parseSummary converts a library result into the reporter's view of it.
func parseSummary(result *lesspipe.ParseResult) reporter.ParseSummary {
	s := reporter.ParseSummary{
		Sources: result.Sources,
		Written: len(result.Written),
		Concat:  result.Concat,
	}
	for _, e := range result.Errors {
		s.Errors = append(s.Errors, e.Error())
	}
	return s
}
