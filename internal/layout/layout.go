// Package layout renders the page shell: header, sidebar and the content
// frame around a page body.
package layout

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/shanksdocs/internal/config"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/site.css
var stylesheet []byte

const (
	LayoutHome = "home"
	LayoutDocs = "docs"
)

// Page is the content slot of one route.
type Page struct {
	Route       string
	Title       string
	Description string
	Body        template.HTML
}

// HeaderLink is one entry of the header pill nav.
type HeaderLink struct {
	Label  string
	Href   string
	Active bool
}

// Layout renders pages with the site chrome.
type Layout struct {
	tmpl *template.Template
	site config.SiteConfig
	tree nav.Tree
}

type view struct {
	Site       config.SiteConfig
	Page       Page
	Layout     string
	Header     []HeaderLink
	Sidebar    []nav.SectionView
	LiveReload bool
}

func (v view) DocumentTitle() string {
	if v.Layout == LayoutHome || v.Page.Title == "" {
		return v.Site.Title
	}
	return v.Page.Title + " | " + v.Site.Title
}

func (v view) MetaDescription() string {
	if v.Page.Description != "" {
		return v.Page.Description
	}
	return v.Site.Description
}

// New parses the embedded templates.
func New(site config.SiteConfig, tree nav.Tree) (*Layout, error) {
	funcs := template.FuncMap{
		"url":   func(p string) string { return JoinURL(site.BaseURL, p) },
		"label": SectionLabel,
	}
	tmpl, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to parse layout templates").Build()
	}
	return &Layout{tmpl: tmpl, site: site, tree: tree}, nil
}

// Render writes the full HTML document for p. The home route gets the
// home layout; every other route gets the docs layout with the sidebar.
func (l *Layout) Render(w io.Writer, p Page, liveReload bool) error {
	v := view{
		Site:       l.site,
		Page:       p,
		Layout:     Select(p.Route),
		Header:     Header(p.Route),
		LiveReload: liveReload,
	}
	if v.Layout == LayoutDocs {
		v.Sidebar = l.tree.Annotate(p.Route)
	}
	if err := l.tmpl.ExecuteTemplate(w, "base", v); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRender, "failed to render page").
			WithContext("route", p.Route).
			Build()
	}
	return nil
}

// Select picks the nested layout for route.
func Select(route string) string {
	if route == "/" {
		return LayoutHome
	}
	return LayoutDocs
}

// Header returns the pill nav for route. Home is active only on "/";
// Docs is active on every route under /docs.
func Header(route string) []HeaderLink {
	return []HeaderLink{
		{Label: "Home", Href: "/", Active: route == "/"},
		{Label: "Docs", Href: "/docs", Active: strings.HasPrefix(route, "/docs")},
	}
}

// SectionLabel formats a sidebar section heading.
func SectionLabel(s string) string {
	// Casers are stateful and must not be shared across goroutines.
	return cases.Upper(language.English).String(s)
}

// JoinURL prefixes an absolute route with the site base URL.
func JoinURL(base, p string) string {
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// WriteCSS writes the shell and typography stylesheet.
func WriteCSS(w io.Writer) error {
	_, err := w.Write(stylesheet)
	return err
}
