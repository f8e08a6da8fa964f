package filesystem

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/loadfile/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystems(t *testing.T) {
	tmpDir := t.TempDir()

	impls := []struct {
		name string
		fs   types.FS
		root string
	}{
		{"os", NewOS(), tmpDir},
		{"memory", NewMemory(), "/mem"},
	}

	for _, impl := range impls {
		t.Run(impl.name, func(t *testing.T) {
			fsys := impl.fs
			subDir := filepath.Join(impl.root, "sub", "dir")
			testFile := filepath.Join(subDir, "test.txt")
			testContent := []byte("hello world")

			require.NoError(t, fsys.MkdirAll(subDir, 0755))
			// MkdirAll is idempotent
			require.NoError(t, fsys.MkdirAll(subDir, 0755))

			require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

			content, err := fsys.ReadFile(testFile)
			require.NoError(t, err)
			assert.Equal(t, testContent, content)

			// Overwrite replaces the whole file
			require.NoError(t, fsys.WriteFile(testFile, []byte("hi"), 0644))
			content, err = fsys.ReadFile(testFile)
			require.NoError(t, err)
			assert.Equal(t, []byte("hi"), content)

			_, err = fsys.ReadFile(filepath.Join(subDir, "missing.txt"))
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestAferoReadFileRejectsDirectory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/a/b", 0755))

	_, err := fsys.ReadFile("/a/b")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}
