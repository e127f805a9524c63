package nav

// IsActive reports whether the sidebar entry for itemHref is highlighted on
// currentPath. Only an exact match counts: /docs/cli is not active on
// /docs/cli/new, and parent sections never highlight for child routes.
func IsActive(currentPath, itemHref string) bool {
	return currentPath == itemHref
}

// ItemView is an item annotated for rendering.
type ItemView struct {
	Item
	Active bool
}

// SectionView is a section annotated for rendering.
type SectionView struct {
	Section string
	Items   []ItemView
}

// Annotate marks the entry matching currentPath as active.
func (t Tree) Annotate(currentPath string) []SectionView {
	views := make([]SectionView, 0, len(t.sections))
	for _, s := range t.sections {
		v := SectionView{Section: s.Section, Items: make([]ItemView, 0, len(s.Items))}
		for _, it := range s.Items {
			v.Items = append(v.Items, ItemView{Item: it, Active: IsActive(currentPath, it.Href)})
		}
		views = append(views, v)
	}
	return views
}
