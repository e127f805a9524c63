// Package defaultsite embeds the Shanks documentation so the binary can
// build and serve it without any files on disk.
package defaultsite

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

const (
	NavFile    = "nav.yaml"
	ContentDir = "content"
)

//go:embed nav.yaml content
var files embed.FS

// FS returns the embedded site rooted at the directory holding nav.yaml
// and content/.
func FS() fs.FS {
	return files
}

// Content returns the embedded content tree.
func Content() fs.FS {
	sub, err := fs.Sub(files, ContentDir)
	if err != nil {
		panic(err) // the directory is embedded at compile time
	}
	return sub
}

// Export writes the embedded nav file and content tree under dir so they
// can be edited. Existing files are left alone unless force is set.
func Export(dir string, force bool) (int, error) {
	written := 0
	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o750)
		}
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}
		data, err := fs.ReadFile(files, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to export embedded site").
			WithContext("path", dir).
			Build()
	}
	return written, nil
}
