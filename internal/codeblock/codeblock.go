// Package codeblock renders syntax-highlighted code samples inside a
// window-style frame with an optional filename title bar.
package codeblock

import (
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// DefaultLanguage is used when a sample declares no language.
const DefaultLanguage = "python"

const shellClassPrefix = "sh-"

// Options controls how one sample is presented.
type Options struct {
	Language    string
	Filename    string
	LineNumbers bool
}

// Renderer highlights code with the fixed site palettes.
type Renderer struct {
	plain    *html.Formatter
	numbered *html.Formatter
	shell    *html.Formatter
}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{
		plain:    html.New(html.WithClasses(true), html.TabWidth(4)),
		numbered: html.New(html.WithClasses(true), html.TabWidth(4), html.WithLineNumbers(true)),
		shell:    html.New(html.WithClasses(true), html.TabWidth(4), html.ClassPrefix(shellClassPrefix)),
	}
}

var frame = template.Must(template.New("codeblock").Parse(
	`<div class="code-block{{if .Shell}} code-block-shell{{end}}" data-language="{{.Language}}">` +
		`<div class="code-titlebar"><div class="code-dots"><span></span><span></span><span></span></div>` +
		`{{if .Label}}<span class="code-filename">{{.Label}}</span>{{end}}</div>` +
		`{{.Code}}</div>`))

type frameData struct {
	Shell    bool
	Language string
	Label    string
	Code     template.HTML
}

// Render highlights source. Surrounding whitespace is trimmed first, so
// leading and trailing blank lines never reach the output. Unknown
// languages are rendered as plain text.
func (r *Renderer) Render(source string, opts Options) (template.HTML, error) {
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = DefaultLanguage
	}

	f := r.plain
	if opts.LineNumbers {
		f = r.numbered
	}
	code, err := highlight(f, CodeStyle, lexerFor(lang), strings.TrimSpace(source))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to highlight code").
			WithContext("language", lang).
			Build()
	}
	return execFrame(frameData{Language: lang, Label: opts.Filename, Code: code})
}

// RenderShell renders a terminal snippet labeled "bash".
func (r *Renderer) RenderShell(source string) (template.HTML, error) {
	code, err := highlight(r.shell, ShellStyle, lexerFor("bash"), strings.TrimSpace(source))
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to highlight shell snippet").Build()
	}
	return execFrame(frameData{Shell: true, Language: "bash", Label: "bash", Code: code})
}

// WriteCSS writes the stylesheet for both palettes.
func (r *Renderer) WriteCSS(w io.Writer) error {
	if err := r.plain.WriteCSS(w, CodeStyle); err != nil {
		return err
	}
	return r.shell.WriteCSS(w, ShellStyle)
}

// IsShell reports whether lang names a shell dialect rendered with the
// terminal frame.
func IsShell(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "bash", "sh", "shell", "console", "zsh":
		return true
	}
	return false
}

func lexerFor(lang string) chroma.Lexer {
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

func highlight(f *html.Formatter, style *chroma.Style, lexer chroma.Lexer, source string) (template.HTML, error) {
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := f.Format(&buf, style, it); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- chroma escapes token text
}

func execFrame(d frameData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := frame.Execute(&buf, d); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryRender, "failed to render code frame").Build()
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}
