package site

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
)

// anchorIDs collects the fragment targets of a rendered body: every id
// attribute plus the name attribute of <a> elements.
func anchorIDs(body template.HTML) map[string]bool {
	ids := make(map[string]bool)
	z := html.NewTokenizer(strings.NewReader(string(body)))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ids
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch {
				case string(key) == "id":
					ids[string(val)] = true
				case string(key) == "name" && string(name) == "a":
					ids[string(val)] = true
				}
			}
		}
	}
}
