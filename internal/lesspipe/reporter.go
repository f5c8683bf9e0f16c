package lesspipe

import (
	"fmt"
	"io"
	"os"
)

// ParseSummary carries the facts a batch run reporter needs. It mirrors
// the library's ParseResult without importing it, keeping this package
// free of a dependency on pipeline internals.
type ParseSummary struct {
	Sources int
	Written int
	Concat  string
	Errors  []string
}

// Issue is one check finding to display.
type Issue struct {
	File string
	Line int
	Text string
}

// Reporter handles formatting and outputting run results.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter. forceColors bypasses TTY detection.
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: forceColors || shouldUseColors(),
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors() bool {
	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintParseSummary outputs the result of a batch compile run.
func (r *Reporter) PrintParseSummary(s ParseSummary) {
	if len(s.Errors) == 0 {
		fmt.Fprintf(r.w, "%s %s compiled\n",
			RenderStyle(StyleGreen, "✓", r.useColors),
			pluralizeCount(s.Written, "stylesheet", "stylesheets"))
	} else {
		fmt.Fprintf(r.w, "%s %s compiled, %s\n",
			RenderStyle(StyleRed, "✗", r.useColors),
			pluralizeCount(s.Written, "stylesheet", "stylesheets"),
			RenderStyle(StyleRed, pluralizeCount(len(s.Errors), "failure", "failures"), r.useColors))
		for _, e := range s.Errors {
			fmt.Fprintf(r.w, "  %s\n", e)
		}
	}

	if s.Concat != "" {
		fmt.Fprintf(r.w, "  Concatenated output: %s\n", s.Concat)
	}
	skipped := s.Sources - s.Written - len(s.Errors)
	if skipped > 0 {
		fmt.Fprintf(r.w, "  %s\n",
			RenderStyle(StyleGray, pluralizeCount(skipped, "source skipped", "sources skipped"), r.useColors))
	}
}

// PrintCleanSummary outputs the result of a clean run.
func (r *Reporter) PrintCleanSummary(removed []string) {
	fmt.Fprintf(r.w, "%s %s removed\n",
		RenderStyle(StyleGreen, "✓", r.useColors),
		pluralizeCount(len(removed), "generated file", "generated files"))
	for _, path := range removed {
		fmt.Fprintf(r.w, "  %s\n", path)
	}
}

// PrintIssues outputs check findings, one file:line: message per issue.
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		location := fmt.Sprintf("%s:%d:", issue.File, issue.Line)
		fmt.Fprintf(r.w, "%s %s\n",
			RenderStyle(StyleCyan, location, r.useColors),
			issue.Text)
	}

	if len(issues) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintf(r.w, "%s found\n", pluralizeCount(len(issues), "issue", "issues"))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
