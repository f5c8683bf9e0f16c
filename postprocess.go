package lesspipe

import (
	"fmt"
	"strings"
)

// Header is the attribution banner prepended to generated files when the
// header option is enabled. The single %s slot receives the originating
// source path. The text is fixed; downstream tooling greps for it.
const Header = `/*

  [ GENERATED FILE - DO NOT EDIT ]

  This file was compiled from LESS source: %s
  Changes made here will be lost the next time the
  stylesheets are regenerated.

*/
`

// PostProcessor applies the configured output transforms to compiled CSS.
// Order is fixed: compression first, header second, so the banner's own
// newlines survive compression.
type PostProcessor struct {
	Compression bool
	Header      bool
}

// Apply runs the enabled transforms over css for the given source.
func (p PostProcessor) Apply(css string, src SourceFile) string {
	if p.Compression {
		css = Compress(css)
	}
	if p.Header {
		css = fmt.Sprintf(Header, src.Path) + css
	}
	return css
}

// Compress deletes every newline character from css, producing a single
// physical line. This is literal deletion, not whitespace collapsing:
// content that depends on newlines as tokens will break, matching the
// documented contract.
func Compress(css string) string {
	return strings.ReplaceAll(css, "\n", "")
}
