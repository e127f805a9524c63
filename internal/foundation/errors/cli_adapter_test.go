package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", stderrors.New("boom"), 1},
		{"validation", ValidationError("bad").Build(), 2},
		{"not found", NotFoundError("missing").Build(), 3},
		{"config", ConfigError("bad").Build(), 7},
		{"filesystem", FileSystemError("mkdir").Build(), 11},
		{"content", ContentError("title").Build(), 11},
		{"runtime", RuntimeError("server").Build(), 12},
		{"internal", InternalError("oops").Build(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	cfg := ConfigError("configuration file not found").Build()
	assert.Equal(t, "configuration file not found", quiet.FormatError(cfg))
	assert.Equal(t, cfg.Error(), verbose.FormatError(cfg))

	fs := FileSystemError("create page directory").Build()
	assert.Equal(t, "filesystem: create page directory", quiet.FormatError(fs))

	internal := InternalError("nil page").Build()
	assert.Contains(t, quiet.FormatError(internal), "use -v")

	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
	assert.Empty(t, quiet.FormatError(nil))
}
