package site

import (
	"net/url"
	"strings"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/layout"
	"git.home.luguber.info/inful/shanksdocs/internal/markdown"
)

// IssueKind classifies a consistency finding.
type IssueKind string

const (
	IssueMissingPage  IssueKind = "missing_page"
	IssueBrokenLink   IssueKind = "broken_link"
	IssueUnlisted     IssueKind = "unlisted_page"
	IssuePlaceholder  IssueKind = "placeholder"
	IssueBrokenAnchor IssueKind = "broken_anchor"
)

// Issue is one finding of Check.
type Issue struct {
	Kind    IssueKind
	Route   string
	Target  string
	Message string
}

// Report collects the findings of Check. Errors block a build; warnings
// and notices are informational.
type Report struct {
	Errors   []Issue
	Warnings []Issue
	Notices  []Issue
}

// OK reports whether the site can be built.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Err returns a content error summarizing the blocking findings.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	routes := make([]string, 0, len(r.Errors))
	for _, is := range r.Errors {
		routes = append(routes, is.Route)
	}
	return ferrors.ContentError("site check failed").
		WithContext("errors", len(r.Errors)).
		WithContext("routes", strings.Join(routes, ",")).
		Build()
}

// Check cross-references navigation, pages and internal links. Every nav
// href must have a page and every absolute internal link must resolve.
// Pages reachable only by URL and fragments that match no element id are
// reported as warnings.
func (s *Site) Check() Report {
	var r Report

	for _, href := range s.tree.Routes() {
		if _, ok := s.pages[href]; !ok {
			r.Errors = append(r.Errors, Issue{
				Kind:    IssueMissingPage,
				Route:   href,
				Message: "navigation entry has no content page",
			})
		}
	}

	anchors := make(map[string]map[string]bool)
	idsOf := func(route string) map[string]bool {
		ids, ok := anchors[route]
		if !ok {
			ids = anchorIDs(s.pages[route].Body)
			anchors[route] = ids
		}
		return ids
	}

	linked := make(map[string]bool)
	for _, h := range layout.Header("/") {
		linked[h.Href] = true
	}
	for _, route := range s.routes {
		p := s.pages[route]
		if !s.tree.Contains(route) && !linked[route] {
			r.Warnings = append(r.Warnings, Issue{
				Kind:    IssueUnlisted,
				Route:   route,
				Message: "page is not listed in navigation",
			})
		}
		if p.Untouched {
			r.Notices = append(r.Notices, Issue{
				Kind:    IssuePlaceholder,
				Route:   route,
				Message: "page still holds its scaffolded placeholder",
			})
		}
		for _, l := range markdown.ExtractLinks(p.Markdown) {
			target, fragment, ok := internalTarget(route, l.Destination)
			if !ok || target == StylesheetPath {
				continue
			}
			if _, exists := s.pages[target]; !exists {
				r.Errors = append(r.Errors, Issue{
					Kind:    IssueBrokenLink,
					Route:   route,
					Target:  l.Destination,
					Message: "link points to a route without a page",
				})
				continue
			}
			if fragment != "" && !idsOf(target)[fragment] {
				r.Warnings = append(r.Warnings, Issue{
					Kind:    IssueBrokenAnchor,
					Route:   route,
					Target:  l.Destination,
					Message: "fragment matches no heading or anchor on the target page",
				})
			}
		}
	}
	return r
}

// internalTarget returns the route and fragment an in-site link points
// to. Bare fragments refer to the page they appear on.
func internalTarget(from, dest string) (route, fragment string, ok bool) {
	if strings.HasPrefix(dest, "#") {
		return from, dest[1:], true
	}
	if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return "", "", false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", false
	}
	return NormalizeRoute(u.Path), u.Fragment, true
}
