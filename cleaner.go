package lesspipe

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cleaner removes previously generated output for currently discovered
// sources. It traverses symmetrically with the Generator: one candidate
// destination per discovered source, nothing else is touched.
type Cleaner struct {
	gen *Generator
}

// NewCleaner builds a cleaner sharing the generator's discovery.
func NewCleaner(gen *Generator) *Cleaner {
	return &Cleaner{gen: gen}
}

// Clean deletes the destination .css file for each discovered source and
// returns the paths it removed. Absent destinations are skipped silently;
// running Clean twice is a no-op the second time.
func (c *Cleaner) Clean() ([]string, error) {
	sources, err := c.gen.Discover()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, src := range sources {
		logical, err := c.gen.Logical(src)
		if err != nil {
			return removed, err
		}

		segs := append([]string{c.gen.config.DestinationPath}, logical...)
		segs[len(segs)-1] += ".css"
		dest := filepath.Join(segs...)

		if err := os.Remove(dest); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("remove %s: %w", dest, err)
		}
		if c.gen.config.Verbose {
			fmt.Printf("Removed %s\n", dest)
		}
		removed = append(removed, dest)
	}
	return removed, nil
}
