package lesspipe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Issue is a problem found in a stylesheet source before compilation.
type Issue struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// CheckResult reports the outcome of a pre-flight source check.
type CheckResult struct {
	Sources int     `json:"sources"`
	Issues  []Issue `json:"issues"`
}

// Check lexes every discovered source and reports structural problems
// that would surface as compile failures mid-batch: unbalanced braces and
// malformed tokens such as unterminated comments or strings. LESS and lss
// sources share enough token structure with CSS for these checks to hold.
func (g *Generator) Check() (*CheckResult, error) {
	sources, err := g.Discover()
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Sources: len(sources)}
	for _, src := range sources {
		// #nosec G304 - path comes from trusted discovery
		content, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		result.Issues = append(result.Issues, checkSource(src.Path, string(content))...)
	}
	return result, nil
}

// checkSource runs the CSS lexer over one source and collects issues.
func checkSource(path, content string) []Issue {
	var issues []Issue

	lexer := css.NewLexer(parse.NewInputString(content))
	line := 1
	depth := 0
	lastOpen := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				issues = append(issues, Issue{
					Path: path,
					Line: line,
					Text: err.Error(),
				})
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
			lastOpen = line
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				issues = append(issues, Issue{
					Path: path,
					Line: line,
					Text: "unexpected '}' with no open block",
				})
				depth = 0
			}
		}

		line += strings.Count(string(text), "\n")
	}

	if depth > 0 {
		issues = append(issues, Issue{
			Path: path,
			Line: lastOpen,
			Text: fmt.Sprintf("%d unclosed block(s)", depth),
		})
	}

	return issues
}
