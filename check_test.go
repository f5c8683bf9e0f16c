package lesspipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTexts []string
	}{
		{
			name:    "well formed",
			content: ".btn {\n  color: red;\n}\n.btn:hover {\n  color: blue;\n}\n",
		},
		{
			name:      "unclosed block",
			content:   ".btn {\n  color: red;\n",
			wantTexts: []string{"unclosed block"},
		},
		{
			name:      "stray closing brace",
			content:   ".btn {\n  color: red;\n}\n}\n",
			wantTexts: []string{"unexpected '}'"},
		},
		{
			name:      "nested unclosed blocks",
			content:   "@media screen {\n.btn {\n  color: red;\n",
			wantTexts: []string{"2 unclosed block(s)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkSource("screen.less", tt.content)
			require.Len(t, issues, len(tt.wantTexts))
			for i, want := range tt.wantTexts {
				assert.Contains(t, issues[i].Text, want)
				assert.Equal(t, "screen.less", issues[i].Path)
				assert.Greater(t, issues[i].Line, 0)
			}
		})
	}
}

func TestCheckSource_ReportsLineNumbers(t *testing.T) {
	issues := checkSource("screen.less", ".a {\n}\n}\n")
	require.Len(t, issues, 1)
	assert.Equal(t, 3, issues[0].Line)
}

func TestGenerator_Check(t *testing.T) {
	gen, srcDir, _ := newTestGenerator(t, Config{}, nil)
	writeSource(t, srcDir, "good.css", ".a { color: red; }\n")
	writeSource(t, srcDir, "bad.less", ".b {\n")

	result, err := gen.Check()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sources)
	require.Len(t, result.Issues, 1)
	assert.True(t, strings.HasSuffix(result.Issues[0].Path, "bad.less"))
}

func TestWriteCheckJSON(t *testing.T) {
	var buf strings.Builder
	result := &CheckResult{
		Sources: 2,
		Issues:  []Issue{{Path: "bad.less", Line: 1, Text: "unclosed block"}},
	}
	require.NoError(t, WriteCheckJSON(&buf, result))

	out := buf.String()
	assert.Contains(t, out, `"sources": 2`)
	assert.Contains(t, out, `"bad.less"`)
}
