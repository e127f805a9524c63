// Package markdown turns page bodies into HTML and extracts links for
// checking.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"git.home.luguber.info/inful/shanksdocs/internal/callout"
	"git.home.luguber.info/inful/shanksdocs/internal/codeblock"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// Renderer converts Markdown into HTML using the site's code block and
// callout components for fenced blocks.
type Renderer struct {
	md   goldmark.Markdown
	code *codeblock.Renderer
}

// New returns a Renderer that highlights code with code.
func New(code *codeblock.Renderer) *Renderer {
	r := &Renderer{code: code}
	r.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&fenceRenderer{r: r}, 100)),
		),
	)
	return r
}

// Render converts body into HTML.
func (r *Renderer) Render(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryContent, "failed to render markdown").Build()
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- page bodies are authored content
}

type fenceRenderer struct {
	r *Renderer
}

func (f *fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindFencedCodeBlock, f.renderFenced)
}

func (f *fenceRenderer) renderFenced(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	n := node.(*gmast.FencedCodeBlock)

	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	fence, err := ParseInfo(info)
	if err != nil {
		return gmast.WalkStop, err
	}

	raw := bytes.NewBuffer(fenceBody(n, source))

	var out template.HTML
	switch {
	case fence.Kind == FenceCallout:
		body, rerr := f.r.Render(raw.Bytes())
		if rerr != nil {
			return gmast.WalkStop, rerr
		}
		out, err = callout.Render(fence.Variant, fence.Title, body)
	case codeblock.IsShell(fence.Language) && fence.Filename == "" && !fence.LineNumbers:
		out, err = f.r.code.RenderShell(raw.String())
	default:
		out, err = f.r.code.Render(raw.String(), codeblock.Options{
			Language:    fence.Language,
			Filename:    fence.Filename,
			LineNumbers: fence.LineNumbers,
		})
	}
	if err != nil {
		return gmast.WalkStop, err
	}
	_, _ = w.WriteString(string(out))
	return gmast.WalkContinue, nil
}
