package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeYAML_EmptyMap_ReturnsEmpty(t *testing.T) {
	out, err := SerializeYAML(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSerializeYAML_SortsKeysAndQuotesStrings(t *testing.T) {
	out, err := SerializeYAML(map[string]string{
		"title":       "shanks new",
		"description": "Create a new Shanks project",
		"weight":      "10",
	})
	require.NoError(t, err)
	require.Equal(t, "description: Create a new Shanks project\ntitle: shanks new\nweight: \"10\"\n", string(out))
}

func TestSerializeYAML_Deterministic(t *testing.T) {
	fields := map[string]string{"b": "2", "a": "1", "c": "3"}
	first, err := SerializeYAML(fields)
	require.NoError(t, err)
	for range 10 {
		again, err := SerializeYAML(fields)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
