package lesspipe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubCSS = "body {\n  color: red;\n}\n"

func TestCompress(t *testing.T) {
	compressed := Compress(stubCSS)

	assert.Zero(t, strings.Count(compressed, "\n"), "compression deletes every newline")
	assert.Equal(t, "body {  color: red;}", compressed)

	// Idempotent: applying twice yields the same result as once.
	assert.Equal(t, compressed, Compress(compressed))
}

func TestPostProcessor_Apply(t *testing.T) {
	src := SourceFile{Path: "app/stylesheets/screen.less", Ext: "less"}

	tests := []struct {
		name string
		p    PostProcessor
		want string
	}{
		{
			name: "disabled is identity",
			p:    PostProcessor{},
			want: stubCSS,
		},
		{
			name: "compression only",
			p:    PostProcessor{Compression: true},
			want: "body {  color: red;}",
		},
		{
			name: "header only",
			p:    PostProcessor{Header: true},
			want: fmt.Sprintf(Header, src.Path) + stubCSS,
		},
		{
			name: "compression then header",
			p:    PostProcessor{Compression: true, Header: true},
			want: fmt.Sprintf(Header, src.Path) + "body {  color: red;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Apply(stubCSS, src))
		})
	}
}

func TestPostProcessor_HeaderSurvivesCompression(t *testing.T) {
	// Compression runs first, header second: the banner's own newlines
	// must survive even when compression is enabled.
	src := SourceFile{Path: "app/stylesheets/screen.less", Ext: "less"}
	p := PostProcessor{Compression: true, Header: true}

	out := p.Apply(stubCSS, src)

	require.True(t, strings.HasPrefix(out, "/*"))
	assert.Contains(t, out, src.Path)
	assert.Contains(t, out, "\n", "banner newlines are preserved")

	body := strings.TrimPrefix(out, fmt.Sprintf(Header, src.Path))
	assert.Zero(t, strings.Count(body, "\n"), "CSS body is fully compressed")
}

func TestHeaderBannerContainsSourcePath(t *testing.T) {
	src := SourceFile{Path: "app/stylesheets/screen.less", Ext: "less"}
	out := PostProcessor{Header: true}.Apply("a{}", src)

	assert.True(t, strings.HasPrefix(out, fmt.Sprintf(Header, "app/stylesheets/screen.less")))
}
