package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_PromoteReplacesOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out, "old.html"), []byte("old"), 0o600))

	st, err := Begin(out)
	require.NoError(t, err)
	assert.Equal(t, out+"_stage", st.Path())
	require.NoError(t, os.WriteFile(filepath.Join(st.Path(), "new.html"), []byte("new"), 0o600))

	require.NoError(t, st.Promote())

	assert.FileExists(t, filepath.Join(out, "new.html"))
	assert.NoFileExists(t, filepath.Join(out, "old.html"))
	assert.NoDirExists(t, out+"_stage")
	assert.NoDirExists(t, out+".prev")
}

func TestStage_PromoteFailureRestoresOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("live"), 0o600))

	st, err := Begin(out)
	require.NoError(t, err)

	orig := rename
	t.Cleanup(func() { rename = orig })
	rename = func(from, to string) error {
		if from == st.Path() {
			return errors.New("cross-device link")
		}
		return orig(from, to)
	}

	require.Error(t, st.Promote())
	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "live", string(data))
	assert.NoDirExists(t, out+".prev")
	assert.DirExists(t, st.Path())

	st.Abort()
	assert.NoDirExists(t, out+"_stage")
}

func TestStage_PromoteWithoutExistingOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")

	st, err := Begin(out)
	require.NoError(t, err)
	require.NoError(t, st.Promote())
	assert.DirExists(t, out)

	require.Error(t, st.Promote())
}

func TestStage_AbortKeepsPreviousOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("live"), 0o600))

	st, err := Begin(out)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(st.Path(), "index.html"), []byte("partial"), 0o600))
	st.Abort()
	st.Abort()

	assert.NoDirExists(t, out+"_stage")
	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "live", string(data))
}

func TestBegin_ClearsStaleStage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.MkdirAll(out+"_stage", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out+"_stage", "leftover"), nil, 0o600))

	st, err := Begin(out)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(st.Path(), "leftover"))
}
