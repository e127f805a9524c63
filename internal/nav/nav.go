// Package nav holds the hand-authored navigation tree that drives the
// documentation sidebar.
//
// A Tree is parsed and validated once at startup and then passed by value to
// the components that need it. Nothing mutates it afterwards.
package nav

import (
	"strings"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// Item is one sidebar link.
type Item struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

// Section groups items under a display label.
type Section struct {
	Section string `yaml:"section"`
	Items   []Item `yaml:"items"`
}

// Tree is the ordered list of sidebar sections.
type Tree struct {
	sections []Section
	index    map[string]Item
}

// New builds a validated tree from sections. The slice is copied.
func New(sections []Section) (Tree, error) {
	copied := make([]Section, len(sections))
	for i, s := range sections {
		copied[i] = Section{Section: s.Section, Items: append([]Item(nil), s.Items...)}
	}
	t := Tree{sections: copied}
	if err := t.Validate(); err != nil {
		return Tree{}, err
	}
	t.index = make(map[string]Item)
	for _, s := range copied {
		for _, it := range s.Items {
			t.index[it.Href] = it
		}
	}
	return t, nil
}

// Sections returns a copy of the tree's sections.
func (t Tree) Sections() []Section {
	out := make([]Section, len(t.sections))
	for i, s := range t.sections {
		out[i] = Section{Section: s.Section, Items: append([]Item(nil), s.Items...)}
	}
	return out
}

// Routes lists every href in tree order.
func (t Tree) Routes() []string {
	var routes []string
	for _, s := range t.sections {
		for _, it := range s.Items {
			routes = append(routes, it.Href)
		}
	}
	return routes
}

// Lookup returns the item whose href equals href.
func (t Tree) Lookup(href string) (Item, bool) {
	it, ok := t.index[href]
	return it, ok
}

// Contains reports whether href appears in the tree.
func (t Tree) Contains(href string) bool {
	_, ok := t.index[href]
	return ok
}

// Len returns the number of items across all sections.
func (t Tree) Len() int {
	return len(t.index)
}

// Validate checks that every section has a label and that every href is
// non-empty, rooted and unique.
func (t Tree) Validate() error {
	seen := make(map[string]string)
	for _, s := range t.sections {
		if strings.TrimSpace(s.Section) == "" {
			return ferrors.ValidationError("navigation section label is empty").Build()
		}
		for _, it := range s.Items {
			switch {
			case it.Href == "":
				return ferrors.ValidationError("navigation item has empty href").
					WithContext("section", s.Section).
					WithContext("title", it.Title).
					Build()
			case !strings.HasPrefix(it.Href, "/"):
				return ferrors.ValidationError("navigation href must start with /").
					WithContext("section", s.Section).
					WithContext("href", it.Href).
					Build()
			case strings.TrimSpace(it.Title) == "":
				return ferrors.ValidationError("navigation item has empty title").
					WithContext("section", s.Section).
					WithContext("href", it.Href).
					Build()
			}
			if prev, dup := seen[it.Href]; dup {
				return ferrors.ValidationError("duplicate navigation href").
					WithContext("href", it.Href).
					WithContext("first_section", prev).
					WithContext("section", s.Section).
					Build()
			}
			seen[it.Href] = s.Section
		}
	}
	return nil
}
