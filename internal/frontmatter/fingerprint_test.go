package frontmatter

import (
	"testing"

	"github.com/inful/mdfp"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_ExcludesFingerprintField(t *testing.T) {
	body := []byte("# Title\n")
	fields := map[string]string{"title": "Routing"}

	fp, err := Fingerprint(fields, body)
	require.NoError(t, err)

	fields[FingerprintField] = "stale"
	again, err := Fingerprint(fields, body)
	require.NoError(t, err)
	require.Equal(t, fp, again)
}

func TestFingerprint_MatchesLibrary(t *testing.T) {
	body := []byte("content\n")
	fp, err := Fingerprint(map[string]string{"title": "A"}, body)
	require.NoError(t, err)
	require.Equal(t, mdfp.CalculateFingerprintFromParts("title: A", "content\n"), fp)
}

func TestStamp(t *testing.T) {
	fields := map[string]string{"title": "CLI"}
	body := []byte("body\n")

	fp, changed, err := Stamp(fields, body)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, fp, fields[FingerprintField])

	_, changed, err = Stamp(fields, body)
	require.NoError(t, err)
	require.False(t, changed)
}
