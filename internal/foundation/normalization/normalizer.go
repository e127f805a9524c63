// Package normalization maps loosely written names (mixed case, stray
// whitespace) onto closed sets of values.
package normalization

import (
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	name         string
	validValues  map[string]T
	defaultValue T
	validKeys    []string // sorted, for error messages
}

// New creates a normalizer for the enum called name. Keys of values are
// normalized the same way as input.
func New[T comparable](name string, values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		name:         name,
		validValues:  make(map[string]T, len(values)),
		defaultValue: defaultValue,
		validKeys:    make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := Clean(k)
		n.validValues[key] = v
		n.validKeys = append(n.validKeys, key)
	}
	sort.Strings(n.validKeys)
	return n
}

// Clean lowercases and trims s.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalize returns the value for raw, or the default when unknown.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.validValues[Clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Parse returns the value for raw, or a validation error listing the
// accepted names.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.validValues[Clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, ferrors.ValidationError("unknown "+n.name).
		WithContext(n.name, raw).
		WithContext("valid", strings.Join(n.validKeys, ",")).
		Build()
}

// ValidKeys returns the accepted names in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}
