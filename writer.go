package lesspipe

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer places generated CSS under a destination root.
type Writer struct {
	DestDir string
}

// Write appends a .css suffix to the final segment, joins with the
// destination root, creates intermediate directories and writes css plus a
// trailing newline. Any existing file is overwritten. Returns the
// destination path.
func (w *Writer) Write(logical []string, css string) (string, error) {
	if len(logical) == 0 {
		return "", fmt.Errorf("empty destination path")
	}

	segs := append([]string{w.DestDir}, logical...)
	segs[len(segs)-1] += ".css"
	dest := filepath.Join(segs...)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(css+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return dest, nil
}
