package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/lesspipe"
	reporter "github.com/yacobolo/lesspipe/internal/lesspipe"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lex stylesheet sources and report structural problems",
	Long: `Run every discovered source through the CSS lexer and report issues
that would otherwise fail mid-batch: unbalanced braces, unterminated
comments and strings. Does not invoke the LESS compiler.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		gen := lesspipe.NewGenerator(config, nil)
		result, err := gen.Check()
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		quiet := getBoolWithFallback("quiet", "quiet", false)
		format := lesspipe.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", ""))

		if !quiet {
			if format == lesspipe.OutputJSON {
				if err := lesspipe.WriteCheckJSON(os.Stdout, result); err != nil {
					return err
				}
			} else {
				r := reporter.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
				r.PrintIssues(checkIssues(result))
			}
		}

		strict := getBoolWithFallback("strict", "check.strict", false)
		if strict && len(result.Issues) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: text|json")
}

// checkIssues converts library issues into the reporter's display type.
func checkIssues(result *lesspipe.CheckResult) []reporter.Issue {
	issues := make([]reporter.Issue, 0, len(result.Issues))
	for _, i := range result.Issues {
		issues = append(issues, reporter.Issue{File: i.Path, Line: i.Line, Text: i.Text})
	}
	return issues
}
