package defaultsite

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/shanksdocs/internal/codeblock"
	"git.home.luguber.info/inful/shanksdocs/internal/content"
	"git.home.luguber.info/inful/shanksdocs/internal/markdown"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
)

func TestEveryNavHrefHasAPage(t *testing.T) {
	tree, err := nav.LoadFS(FS(), NavFile)
	require.NoError(t, err)

	pages, err := content.Load(Content(), markdown.New(codeblock.New()))
	require.NoError(t, err)

	byRoute := make(map[string]bool, len(pages))
	for _, p := range pages {
		byRoute[p.Route] = true
	}
	for _, href := range tree.Routes() {
		assert.True(t, byRoute[href], "no page for %s", href)
	}
	assert.True(t, byRoute["/"])
	assert.True(t, byRoute["/docs"])
}

func TestNavMatchesSidebarShape(t *testing.T) {
	tree, err := nav.LoadFS(FS(), NavFile)
	require.NoError(t, err)

	sections := tree.Sections()
	require.Len(t, sections, 12)
	assert.Equal(t, "Getting Started", sections[0].Section)
	assert.Equal(t, "Examples", sections[11].Section)
	assert.Equal(t, 46, tree.Len())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	n, err := Export(dir, false)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.FileExists(t, filepath.Join(dir, NavFile))
	assert.FileExists(t, filepath.Join(dir, ContentDir, "docs", "cli", "index.md"))

	custom := filepath.Join(dir, ContentDir, "index.md")
	require.NoError(t, os.WriteFile(custom, []byte("mine"), 0o600))

	n, err = Export(dir, false)
	require.NoError(t, err)
	assert.Zero(t, n)
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))

	_, err = Export(dir, true)
	require.NoError(t, err)
	data, err = os.ReadFile(custom)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
}

func TestContentRoot(t *testing.T) {
	_, err := fs.Stat(Content(), "index.md")
	require.NoError(t, err)
}
