// Package content loads Markdown pages with YAML frontmatter from a file
// tree and maps them onto routes.
package content

import (
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/frontmatter"
	"git.home.luguber.info/inful/shanksdocs/internal/markdown"
)

// Page is one rendered content page.
type Page struct {
	Route       string
	Title       string
	Description string
	Source      string
	Body        template.HTML

	// Markdown is the page body without frontmatter.
	Markdown []byte

	// Untouched is true when the stored fingerprint still matches the
	// page, i.e. the page has not been edited since it was stamped.
	Untouched bool
}

type meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Fingerprint string `yaml:"fingerprint"`
}

// RouteFor maps a slash-separated file path to its route: index.md in
// directory d becomes /d, the root index.md becomes / and any other
// name.md becomes /dir/name.
func RouteFor(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	dir, file := path.Split(p)
	dir = strings.TrimSuffix(dir, "/")
	name := strings.TrimSuffix(file, path.Ext(file))
	if name == "index" {
		return "/" + dir
	}
	if dir == "" {
		return "/" + name
	}
	return "/" + dir + "/" + name
}

// Load reads every .md file in fsys and renders it with md. Pages are
// returned sorted by route.
func Load(fsys fs.FS, md *markdown.Renderer) ([]Page, error) {
	var pages []Page
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		page, err := loadPage(fsys, p, md)
		if err != nil {
			return err
		}
		if prev, dup := seen[page.Route]; dup {
			return ferrors.ContentError("two pages map to the same route").
				WithContext("route", page.Route).
				WithContext("first", prev).
				WithContext("second", p).
				Build()
		}
		seen[page.Route] = p
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		if _, ok := ferrors.AsClassified(err); ok {
			return nil, err
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read content").
			WithRetry(ferrors.RetryBackoff).
			Build()
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })
	return pages, nil
}

func loadPage(fsys fs.FS, p string, md *markdown.Renderer) (Page, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read page").
			WithContext("path", p).
			WithRetry(ferrors.RetryBackoff).
			Build()
	}

	fm, body, _, err := frontmatter.Split(raw)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryContent, "invalid frontmatter").
			WithContext("path", p).
			WithRetry(ferrors.RetryBackoff).
			Build()
	}

	var m meta
	if err := frontmatter.Decode(fm, &m); err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryContent, "invalid frontmatter").
			WithContext("path", p).
			WithRetry(ferrors.RetryBackoff).
			Build()
	}
	if strings.TrimSpace(m.Title) == "" {
		return Page{}, ferrors.ContentError("page has no title").
			WithContext("path", p).
			WithRetry(ferrors.RetryBackoff).
			Build()
	}

	html, err := md.Render(body)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryContent, "failed to render page").
			WithContext("path", p).
			Build()
	}

	page := Page{
		Route:       RouteFor(p),
		Title:       m.Title,
		Description: m.Description,
		Source:      p,
		Body:        html,
		Markdown:    body,
	}
	if m.Fingerprint != "" {
		fields := map[string]string{"title": m.Title, "description": m.Description}
		if fp, err := frontmatter.Fingerprint(fields, body); err == nil {
			page.Untouched = fp == m.Fingerprint
		}
	}
	return page, nil
}
