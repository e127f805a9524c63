// Package site binds navigation, content and layout together. It renders
// single routes for the preview server and whole static builds.
package site

import (
	"bytes"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"

	"git.home.luguber.info/inful/shanksdocs/internal/callout"
	"git.home.luguber.info/inful/shanksdocs/internal/codeblock"
	"git.home.luguber.info/inful/shanksdocs/internal/config"
	"git.home.luguber.info/inful/shanksdocs/internal/content"
	"git.home.luguber.info/inful/shanksdocs/internal/defaultsite"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/layout"
	"git.home.luguber.info/inful/shanksdocs/internal/markdown"
	"git.home.luguber.info/inful/shanksdocs/internal/metrics"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
)

// StylesheetPath is the route of the generated stylesheet.
const StylesheetPath = "/assets/site.css"

// Site is an immutable, fully loaded documentation site.
type Site struct {
	cfg        *config.Config
	tree       nav.Tree
	pages      map[string]content.Page
	routes     []string
	layout     *layout.Layout
	code       *codeblock.Renderer
	recorder   metrics.Recorder
	liveReload bool
}

// Option configures a Site.
type Option func(*Site)

// WithRecorder sets the metrics recorder used by Build.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Site) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLiveReload injects the live reload client into rendered pages.
func WithLiveReload(enabled bool) Option {
	return func(s *Site) { s.liveReload = enabled }
}

// New assembles a site from already loaded parts. Pages keep their order.
func New(cfg *config.Config, tree nav.Tree, pages []content.Page, opts ...Option) (*Site, error) {
	l, err := layout.New(cfg.Site, tree)
	if err != nil {
		return nil, err
	}
	s := &Site{
		cfg:      cfg,
		tree:     tree,
		pages:    make(map[string]content.Page, len(pages)),
		layout:   l,
		code:     codeblock.New(),
		recorder: metrics.NoopRecorder{},
	}
	for _, p := range pages {
		if _, dup := s.pages[p.Route]; dup {
			return nil, ferrors.ContentError("duplicate page route").WithContext("route", p.Route).Build()
		}
		s.pages[p.Route] = p
		s.routes = append(s.routes, p.Route)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load reads navigation and content from the configured directories, or
// from the embedded site when no content directory is configured.
func Load(cfg *config.Config, opts ...Option) (*Site, error) {
	var (
		tree    nav.Tree
		pagesFS fs.FS
		err     error
	)
	if cfg.UsesEmbeddedContent() {
		tree, err = nav.LoadFS(defaultsite.FS(), defaultsite.NavFile)
		pagesFS = defaultsite.Content()
	} else {
		tree, err = nav.LoadFile(cfg.Content.NavFile)
		pagesFS = os.DirFS(cfg.Content.Directory)
	}
	if err != nil {
		return nil, err
	}

	pages, err := content.Load(pagesFS, markdown.New(codeblock.New()))
	if err != nil {
		return nil, err
	}
	return New(cfg, tree, pages, opts...)
}

// Config returns the configuration the site was built from.
func (s *Site) Config() *config.Config {
	return s.cfg
}

// Nav returns the navigation tree.
func (s *Site) Nav() nav.Tree {
	return s.tree
}

// Routes lists every page route in load order.
func (s *Site) Routes() []string {
	out := make([]string, len(s.routes))
	copy(out, s.routes)
	return out
}

// Page looks up the page for route.
func (s *Site) Page(route string) (content.Page, bool) {
	p, ok := s.pages[NormalizeRoute(route)]
	return p, ok
}

// Render returns the full HTML document for route.
func (s *Site) Render(route string) ([]byte, error) {
	route = NormalizeRoute(route)
	p, ok := s.pages[route]
	if !ok {
		return nil, ferrors.NotFoundError("no page for route").WithContext("route", route).Build()
	}

	return s.renderPage(layout.Page{
		Route:       p.Route,
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
	})
}

// RenderNotFound returns the page shell with a not-found message for a
// route that has no page.
func (s *Site) RenderNotFound(route string) ([]byte, error) {
	route = NormalizeRoute(route)
	body := template.HTML(`<h1>Page not found</h1>` +
		`<p>There is no page at <code>` + template.HTMLEscapeString(route) + `</code>.</p>` +
		`<p><a href="/">Back to the documentation home</a></p>`)
	return s.renderPage(layout.Page{Route: route, Title: "Page not found", Body: body})
}

func (s *Site) renderPage(p layout.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.layout.Render(&buf, p, s.liveReload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSS returns the combined stylesheet: shell and typography, code
// highlighting, then callouts.
func (s *Site) CSS() ([]byte, error) {
	var buf bytes.Buffer
	if err := layout.WriteCSS(&buf); err != nil {
		return nil, err
	}
	if err := s.code.WriteCSS(&buf); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to write code styles").Build()
	}
	if err := callout.WriteCSS(&buf); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to write callout styles").Build()
	}
	return buf.Bytes(), nil
}

// NormalizeRoute maps request paths onto page routes: an empty path is
// "/", trailing slashes and index.html path elements are dropped.
func NormalizeRoute(route string) string {
	if trimmed := strings.TrimSuffix(route, "index.html"); trimmed != route && (trimmed == "" || strings.HasSuffix(trimmed, "/")) {
		route = trimmed
	}
	if route == "" {
		return "/"
	}
	route = path.Clean("/" + route)
	return route
}
