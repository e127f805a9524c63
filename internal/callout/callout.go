// Package callout renders labeled, colored notes (info, warning, error,
// success) around arbitrary HTML.
package callout

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/foundation/normalization"
)

// Variant is one of the four callout kinds. The type has no exported
// constructor besides ParseVariant, so only the package values exist.
// The zero Variant renders as Info.
type Variant struct {
	name string
}

var (
	Info    = Variant{name: "info"}
	Warning = Variant{name: "warning"}
	Error   = Variant{name: "error"}
	Success = Variant{name: "success"}
)

// Variants returns all variants in display order.
func Variants() []Variant {
	return []Variant{Info, Warning, Error, Success}
}

var variants = normalization.New("callout variant", map[string]Variant{
	Info.name:    Info,
	Warning.name: Warning,
	Error.name:   Error,
	Success.name: Success,
}, Info)

// ParseVariant maps a name to its Variant, ignoring case and surrounding
// whitespace. Unknown names are rejected.
func ParseVariant(name string) (Variant, error) {
	return variants.Parse(name)
}

func (v Variant) String() string {
	if v.name == "" {
		return Info.name
	}
	return v.name
}

// Style is the fixed presentation of a variant.
type Style struct {
	Icon       string
	Color      string
	Background string
}

var styles = map[string]Style{
	"info":    {Icon: "info", Color: "#89b4fa", Background: "rgba(137, 180, 250, 0.1)"},
	"warning": {Icon: "alert-triangle", Color: "#f9e2af", Background: "rgba(249, 226, 175, 0.1)"},
	"error":   {Icon: "alert-circle", Color: "#f38ba8", Background: "rgba(243, 139, 168, 0.1)"},
	"success": {Icon: "check-circle", Color: "#a6e3a1", Background: "rgba(166, 227, 161, 0.1)"},
}

// Style returns the icon and colors for v.
func (v Variant) Style() Style {
	return styles[v.String()]
}

// icons are stroke paths on a 24x24 grid.
var icons = map[string]template.HTML{
	"info":           `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`,
	"alert-triangle": `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"/><path d="M12 9v4"/><path d="M12 17h.01"/>`,
	"alert-circle":   `<circle cx="12" cy="12" r="10"/><path d="M12 8v4"/><path d="M12 16h.01"/>`,
	"check-circle":   `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
}

var tmpl = template.Must(template.New("callout").Parse(
	`<div class="callout callout-{{.Variant}}" role="note">` +
		`<div class="callout-icon"><svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="{{.Icon}}">{{.Paths}}</svg></div>` +
		`<div class="callout-content">` +
		`{{if .Title}}<div class="callout-title">{{.Title}}</div>{{end}}` +
		`<div class="callout-body">{{.Body}}</div>` +
		`</div></div>`))

// WriteCSS writes the per-variant color rules.
func WriteCSS(w io.Writer) error {
	for _, v := range Variants() {
		s := v.Style()
		if _, err := fmt.Fprintf(w,
			".callout-%s { background-color: %s; border-color: %s; }\n"+
				".callout-%s .callout-icon, .callout-%s .callout-title { color: %s; }\n",
			v, s.Background, s.Color, v, v, s.Color); err != nil {
			return err
		}
	}
	return nil
}

// Render wraps body in a callout box. Title is optional and escaped; body is
// trusted HTML.
func Render(v Variant, title string, body template.HTML) (template.HTML, error) {
	style := v.Style()
	data := struct {
		Variant string
		Icon    string
		Paths   template.HTML
		Title   string
		Body    template.HTML
	}{
		Variant: v.String(),
		Icon:    style.Icon,
		Paths:   icons[style.Icon],
		Title:   title,
		Body:    body,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to render callout").
			WithContext("variant", v.String()).
			Build()
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}
