package lesspipe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_RemovesGeneratedFiles(t *testing.T) {
	gen, srcDir, destDir := newTestGenerator(t, Config{}, stubTransformer(stubCSS))
	writeSource(t, srcDir, "screen.less", "")
	writeSource(t, srcDir, "sub/dir/file.lss", "")

	_, err := gen.Parse()
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(destDir, "screen.css"))

	// A file with no corresponding source must survive cleaning.
	unrelated := writeSource(t, destDir, "handwritten.css", "keep me")

	cleaner := NewCleaner(gen)
	removed, err := cleaner.Clean()
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	assert.NoFileExists(t, filepath.Join(destDir, "screen.css"))
	assert.NoFileExists(t, filepath.Join(destDir, "sub", "dir", "file.css"))
	assert.FileExists(t, unrelated)
}

func TestCleaner_SecondRunIsNoop(t *testing.T) {
	gen, srcDir, _ := newTestGenerator(t, Config{}, stubTransformer(stubCSS))
	writeSource(t, srcDir, "screen.less", "")

	_, err := gen.Parse()
	require.NoError(t, err)

	cleaner := NewCleaner(gen)
	removed, err := cleaner.Clean()
	require.NoError(t, err)
	assert.Len(t, removed, 1)

	// Absent destinations are silently skipped.
	removed, err = cleaner.Clean()
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestCleaner_SubstitutesSourceExtension(t *testing.T) {
	// The candidate destination is the source's relative path with its
	// extension replaced by css, whatever the source extension was.
	gen, srcDir, destDir := newTestGenerator(t, Config{}, nil)
	writeSource(t, srcDir, "reset.css", "")
	writeSource(t, destDir, "reset.css", "generated")

	removed, err := NewCleaner(gen).Clean()
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, filepath.Join(destDir, "reset.css"), removed[0])
}
