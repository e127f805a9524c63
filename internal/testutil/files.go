// Package testutil holds assertion helpers shared by package tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FileAssertions checks file system state below a base directory.
type FileAssertions struct {
	t       testing.TB
	baseDir string
}

// Files returns assertions rooted at baseDir.
func Files(t testing.TB, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

func (fa *FileAssertions) path(rel string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(rel))
}

// Exists asserts that rel is a regular file.
func (fa *FileAssertions) Exists(rel string) *FileAssertions {
	fa.t.Helper()
	st, err := os.Stat(fa.path(rel))
	if assert.NoError(fa.t, err, "expected file %s", rel) {
		assert.True(fa.t, st.Mode().IsRegular(), "expected %s to be a file", rel)
	}
	return fa
}

// NotExists asserts that nothing exists at rel.
func (fa *FileAssertions) NotExists(rel string) *FileAssertions {
	fa.t.Helper()
	_, err := os.Stat(fa.path(rel))
	assert.ErrorIs(fa.t, err, fs.ErrNotExist, "expected %s to be absent", rel)
	return fa
}

// Dir asserts that rel is a directory.
func (fa *FileAssertions) Dir(rel string) *FileAssertions {
	fa.t.Helper()
	st, err := os.Stat(fa.path(rel))
	if assert.NoError(fa.t, err, "expected directory %s", rel) {
		assert.True(fa.t, st.IsDir(), "expected %s to be a directory", rel)
	}
	return fa
}

// Contains asserts that the file at rel contains substr.
func (fa *FileAssertions) Contains(rel, substr string) *FileAssertions {
	fa.t.Helper()
	data, err := os.ReadFile(fa.path(rel))
	if assert.NoError(fa.t, err, "reading %s", rel) {
		assert.Contains(fa.t, string(data), substr, "file %s", rel)
	}
	return fa
}

// CountFiles asserts how many regular files live below rel, recursively.
func (fa *FileAssertions) CountFiles(rel string, want int) *FileAssertions {
	fa.t.Helper()
	n := 0
	err := filepath.WalkDir(fa.path(rel), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if assert.NoError(fa.t, err, "walking %s", rel) {
		assert.Equal(fa.t, want, n, "files below %s", rel)
	}
	return fa
}
