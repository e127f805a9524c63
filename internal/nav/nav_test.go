package nav

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

const sampleNav = `
- section: Getting Started
  items:
    - title: Introduction
      href: /docs/getting-started
    - title: Installation
      href: /docs/installation
- section: CLI
  items:
    - title: Overview
      href: /docs/cli
    - title: shanks new
      href: /docs/cli/new
`

func mustParse(t *testing.T, data string) Tree {
	t.Helper()
	tree, err := Parse([]byte(data))
	require.NoError(t, err)
	return tree
}

func TestIsActive_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		path, href string
		want       bool
	}{
		{"/docs/cli", "/docs/cli", true},
		{"/docs/cli", "/docs/cli/new", false},
		{"/docs/cli/new", "/docs/cli", false},
		{"/docs/cli/", "/docs/cli", false},
		{"", "/docs", false},
		{"/DOCS/CLI", "/docs/cli", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActive(tt.path, tt.href), "IsActive(%q, %q)", tt.path, tt.href)
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	tree := mustParse(t, sampleNav)

	assert.Equal(t, []string{
		"/docs/getting-started",
		"/docs/installation",
		"/docs/cli",
		"/docs/cli/new",
	}, tree.Routes())
	assert.Equal(t, 4, tree.Len())

	sections := tree.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "CLI", sections[1].Section)
}

func TestAnnotate_ChildDoesNotHighlightParent(t *testing.T) {
	tree := mustParse(t, sampleNav)

	views := tree.Annotate("/docs/cli/new")
	var active []string
	for _, s := range views {
		for _, it := range s.Items {
			if it.Active {
				active = append(active, it.Href)
			}
		}
	}
	assert.Equal(t, []string{"/docs/cli/new"}, active)

	for _, s := range tree.Annotate("/docs/unknown") {
		for _, it := range s.Items {
			assert.False(t, it.Active, it.Href)
		}
	}
}

func TestLookup(t *testing.T) {
	tree := mustParse(t, sampleNav)

	it, ok := tree.Lookup("/docs/cli/new")
	require.True(t, ok)
	assert.Equal(t, "shanks new", it.Title)

	assert.False(t, tree.Contains("/docs/cli/run"))
}

func TestSections_ReturnsCopy(t *testing.T) {
	tree := mustParse(t, sampleNav)
	s := tree.Sections()
	s[0].Items[0].Href = "/mutated"

	assert.True(t, tree.Contains("/docs/getting-started"))
	assert.Equal(t, "/docs/getting-started", tree.Routes()[0])
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
	}{
		{"empty href", []Section{{Section: "A", Items: []Item{{Title: "x", Href: ""}}}}},
		{"relative href", []Section{{Section: "A", Items: []Item{{Title: "x", Href: "docs"}}}}},
		{"empty title", []Section{{Section: "A", Items: []Item{{Title: " ", Href: "/docs"}}}}},
		{"empty section", []Section{{Section: "", Items: nil}}},
		{"duplicate href", []Section{
			{Section: "A", Items: []Item{{Title: "x", Href: "/docs"}}},
			{Section: "B", Items: []Item{{Title: "y", Href: "/docs"}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sections)
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("- section: A\n  items:\n    - title: x\n      url: /x\n"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadFile_AndFS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNav), 0o600))

	fromFile, err := LoadFile(path)
	require.NoError(t, err)

	fromFS, err := LoadFS(fstest.MapFS{"nav.yaml": {Data: []byte(sampleNav)}}, "nav.yaml")
	require.NoError(t, err)
	assert.Equal(t, fromFile.Routes(), fromFS.Routes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
