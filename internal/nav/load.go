package nav

import (
	"bytes"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// Parse decodes a YAML list of sections and validates the result.
func Parse(data []byte) (Tree, error) {
	var sections []Section
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sections); err != nil {
		return Tree{}, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse navigation").
			Fatal().
			WithRetry(ferrors.RetryBackoff).
			Build()
	}
	return New(sections)
}

// LoadFile reads and parses a navigation file from disk.
func LoadFile(path string) (Tree, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return Tree{}, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read navigation file").
			WithContext("path", path).
			Fatal().
			WithRetry(ferrors.RetryBackoff).
			Build()
	}
	return Parse(data)
}

// LoadFS reads and parses a navigation file from fsys.
func LoadFS(fsys fs.FS, name string) (Tree, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Tree{}, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read navigation file").
			WithContext("path", name).
			Fatal().
			Build()
	}
	return Parse(data)
}
