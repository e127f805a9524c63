package codeblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_TrimsSurroundingWhitespace(t *testing.T) {
	r := New()

	padded, err := r.Render("\n  code()\n", Options{})
	require.NoError(t, err)
	bare, err := r.Render("  code()", Options{})
	require.NoError(t, err)

	assert.Equal(t, bare, padded)
	assert.NotContains(t, string(padded), "\n\n")
}

func TestRender_PreservesInteriorIndentation(t *testing.T) {
	r := New()
	out, err := r.Render("\nline one\n    indented\n\n", Options{Language: "text"})
	require.NoError(t, err)

	assert.Contains(t, string(out), "    indented")
	assert.NotContains(t, string(out), "indented\n\n")
}

func TestRender_DefaultsToPython(t *testing.T) {
	out, err := New().Render("def handler(req):\n    return {}", Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `data-language="python"`)
	assert.Contains(t, string(out), "def")
}

func TestRender_UnknownLanguageFallsBackToPlainText(t *testing.T) {
	out, err := New().Render("hello <world>", Options{Language: "klingon"})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `data-language="klingon"`)
	assert.Contains(t, html, "hello &lt;world&gt;")
}

func TestRender_FilenameTitleBar(t *testing.T) {
	r := New()

	with, err := r.Render("x = 1", Options{Filename: "internal/routes/__init__.py"})
	require.NoError(t, err)
	assert.Contains(t, string(with), `<span class="code-filename">internal/routes/__init__.py</span>`)

	without, err := r.Render("x = 1", Options{})
	require.NoError(t, err)
	assert.NotContains(t, string(without), "code-filename")
	assert.Contains(t, string(without), "code-dots")
}

func TestRender_LineNumbers(t *testing.T) {
	out, err := New().Render("a\nb\nc", Options{Language: "text", LineNumbers: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="ln"`)
}

func TestRenderShell(t *testing.T) {
	out, err := New().RenderShell("\npip install shanks-django\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "code-block-shell")
	assert.Contains(t, html, `<span class="code-filename">bash</span>`)
	assert.Contains(t, html, "sh-chroma")
}

func TestWriteCSS_IncludesBothPalettes(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, New().WriteCSS(&sb))

	css := sb.String()
	assert.Contains(t, css, "#0d0608")
	assert.Contains(t, css, "#fb7185")
	assert.Contains(t, css, ".sh-chroma")
}

func TestIsShell(t *testing.T) {
	assert.True(t, IsShell("bash"))
	assert.True(t, IsShell("Shell"))
	assert.False(t, IsShell("python"))
	assert.False(t, IsShell(""))
}
