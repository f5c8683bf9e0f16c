package lesspipe

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat selects how check results are rendered.
type OutputFormat string

const (
	// OutputText prints issues in file:line: message form for terminals.
	OutputText OutputFormat = "text"
	// OutputJSON exports structured results for tooling integration.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat validates a requested format, falling back to text.
func DetermineOutputFormat(requested string) OutputFormat {
	switch OutputFormat(requested) {
	case OutputJSON:
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteCheckJSON writes a check result as indented JSON.
func WriteCheckJSON(w io.Writer, result *CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding check result: %w", err)
	}
	return nil
}
