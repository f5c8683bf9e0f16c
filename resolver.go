package lesspipe

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the recognized stylesheet extensions in resolution
// precedence order: when a logical path matches several sources, a plain
// .css wins over .less, which wins over .lss. Precedence is deliberate;
// filesystem enumeration order is never consulted.
var Extensions = []string{"css", "less", "lss"}

// PartialPrefix marks sources meant only for inclusion by other sources.
const PartialPrefix = "_"

// SourceFile is a resolved, existing stylesheet source on disk.
type SourceFile struct {
	Path string // absolute path
	Ext  string // one of Extensions, without the dot
}

// IsPartial reports whether the file's base name carries the partial marker.
func (s SourceFile) IsPartial() bool {
	return strings.HasPrefix(filepath.Base(s.Path), PartialPrefix)
}

// Resolver maps logical paths to source files under a source root.
type Resolver struct {
	SourceDir string
}

// Resolve maps a logical path to a source file by probing each recognized
// extension in precedence order. Returns *NotFoundError when nothing
// matches.
func (r *Resolver) Resolve(logical []string) (SourceFile, error) {
	if len(logical) == 0 {
		return SourceFile{}, &NotFoundError{}
	}

	base := filepath.Join(append([]string{r.SourceDir}, logical...)...)
	for _, ext := range Extensions {
		path := base + "." + ext
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return SourceFile{}, err
		}
		return SourceFile{Path: abs, Ext: ext}, nil
	}

	return SourceFile{}, &NotFoundError{Logical: logical}
}

// Exists reports whether a logical path resolves to a source file.
// Partial-marked final segments report false unconditionally, even when a
// matching file is present.
func (r *Resolver) Exists(logical []string) bool {
	if len(logical) == 0 {
		return false
	}
	if strings.HasPrefix(logical[len(logical)-1], PartialPrefix) {
		return false
	}
	_, err := r.Resolve(logical)
	return err == nil
}
