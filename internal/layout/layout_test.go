package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/shanksdocs/internal/config"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
)

func testLayout(t *testing.T, base string) *Layout {
	t.Helper()
	tree, err := nav.New([]nav.Section{
		{Section: "CLI", Items: []nav.Item{
			{Title: "Overview", Href: "/docs/cli"},
			{Title: "shanks new", Href: "/docs/cli/new"},
		}},
	})
	require.NoError(t, err)

	site := config.Default().Site
	site.BaseURL = base
	l, err := New(site, tree)
	require.NoError(t, err)
	return l
}

func render(t *testing.T, l *Layout, p Page, live bool) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, l.Render(&sb, p, live))
	return sb.String()
}

func TestSelect(t *testing.T) {
	assert.Equal(t, LayoutHome, Select("/"))
	assert.Equal(t, LayoutDocs, Select("/docs"))
	assert.Equal(t, LayoutDocs, Select("/docs/cli/new"))
}

func TestHeader_ActiveRules(t *testing.T) {
	tests := []struct {
		route      string
		home, docs bool
	}{
		{"/", true, false},
		{"/docs", false, true},
		{"/docs/routing/basic", false, true},
	}
	for _, tt := range tests {
		links := Header(tt.route)
		require.Len(t, links, 2)
		assert.Equal(t, tt.home, links[0].Active, tt.route)
		assert.Equal(t, tt.docs, links[1].Active, tt.route)
	}
}

func TestRender_DocsRouteHasShell(t *testing.T) {
	out := render(t, testLayout(t, "/"), Page{
		Route:       "/docs/cli/new",
		Title:       "shanks new",
		Description: "Create a project",
		Body:        "<p>body-marker</p>",
	}, false)

	assert.Contains(t, out, `class="site-header"`)
	assert.Contains(t, out, `class="sidebar"`)
	assert.Contains(t, out, "<h1>shanks new</h1>")
	assert.Contains(t, out, `<p class="lead">Create a project</p>`)
	assert.Contains(t, out, "<p>body-marker</p>")
	assert.Contains(t, out, "<title>shanks new | ")
	assert.Contains(t, out, "CLI</p>")
	assert.NotContains(t, out, "EventSource")

	// Exact match only: the parent overview entry stays inactive.
	assert.Contains(t, out, `<a href="/docs/cli/new" class="sidebar-link active" aria-current="page">`)
	assert.Contains(t, out, `<a href="/docs/cli" class="sidebar-link">`)
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
}

func TestRender_SectionLabelsUppercased(t *testing.T) {
	tree, err := nav.New([]nav.Section{{Section: "Getting Started", Items: []nav.Item{{Title: "Intro", Href: "/docs/intro"}}}})
	require.NoError(t, err)
	l, err := New(config.Default().Site, tree)
	require.NoError(t, err)

	out := render(t, l, Page{Route: "/docs/intro", Title: "Intro"}, false)
	assert.Contains(t, out, `<p class="sidebar-label">GETTING STARTED</p>`)
}

func TestRender_HomeHasNoSidebar(t *testing.T) {
	out := render(t, testLayout(t, "/"), Page{Route: "/", Title: "Shanks", Body: "<p>hi</p>"}, false)

	assert.Contains(t, out, `class="home-layout"`)
	assert.NotContains(t, out, `class="sidebar"`)
	assert.Contains(t, out, `class="pill pill-active">Home</a>`)
	assert.Contains(t, out, "<title>"+config.DefaultTitle+"</title>")
}

func TestRender_LiveReloadAndBaseURL(t *testing.T) {
	out := render(t, testLayout(t, "/preview/"), Page{Route: "/docs/cli", Title: "CLI"}, true)

	assert.Contains(t, out, "EventSource")
	assert.Contains(t, out, `href="/preview/assets/site.css"`)
	assert.Contains(t, out, `href="/preview/docs/cli"`)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "/docs", JoinURL("/", "/docs"))
	assert.Equal(t, "/", JoinURL("", "/"))
	assert.Equal(t, "https://example.com/docs", JoinURL("https://example.com/", "docs"))
}

func TestWriteCSS(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSS(&sb))
	assert.Contains(t, sb.String(), ".sidebar-link.active")
}
