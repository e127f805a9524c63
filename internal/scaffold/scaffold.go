// Package scaffold stamps placeholder pages for planned routes.
//
// Every entry gets the same template under <content>/docs/<path>/index.md.
// Output is a pure function of the entry, so rerunning the generator
// rewrites byte-identical files.
package scaffold

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/frontmatter"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
)

// Entry describes one page to stamp. Path is relative to RoutePrefix.
type Entry struct {
	Path        string
	Title       string
	Description string
}

// Route returns the URL path the page will be served at.
func (e Entry) Route() string {
	return RoutePrefix + e.Path
}

// Validate rejects paths that would escape the docs tree.
func (e Entry) Validate() error {
	clean := path.Clean(e.Path)
	if e.Path == "" || clean != e.Path || strings.HasPrefix(e.Path, "/") || clean == ".." || strings.HasPrefix(clean, "../") {
		return ferrors.ValidationError("invalid scaffold entry path").
			WithContext("path", e.Path).
			Build()
	}
	if strings.TrimSpace(e.Title) == "" {
		return ferrors.ValidationError("scaffold entry has no title").
			WithContext("path", e.Path).
			Build()
	}
	return nil
}

var placeholder = template.Must(template.New("placeholder").Parse("```callout info\n" +
	"This page is under construction. Check back soon for complete documentation.\n" +
	"```\n" +
	"\n" +
	"## Coming Soon\n" +
	"\n" +
	"Detailed documentation for {{.Title}} is being written. In the meantime, check out:\n" +
	"\n" +
	"- [Getting Started Guide](/docs/getting-started)\n" +
	"- [CLI Reference](/docs/cli)\n" +
	"- [GitHub Repository](https://github.com/Araryarch/shanks-django)\n"))

// Render returns the complete page for e, frontmatter included.
func Render(e Entry) ([]byte, error) {
	var body bytes.Buffer
	if err := placeholder.Execute(&body, e); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to render placeholder").
			WithContext("path", e.Path).
			Build()
	}

	fields := map[string]string{"title": e.Title, "description": e.Description}
	if _, _, err := frontmatter.Stamp(fields, body.Bytes()); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to fingerprint page").Build()
	}
	fm, err := frontmatter.SerializeYAML(fields)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to serialize frontmatter").Build()
	}
	return frontmatter.Join(fm, body.Bytes()), nil
}

// CheckAgainst verifies that every entry's route matches exactly one
// navigation href and that no two entries share a route.
func CheckAgainst(tree nav.Tree, entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	var missing, dups []string
	for _, e := range entries {
		r := e.Route()
		if seen[r] {
			dups = append(dups, r)
		}
		seen[r] = true
		if !tree.Contains(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 && len(dups) == 0 {
		return nil
	}
	return ferrors.ValidationError("scaffold entries do not match navigation").
		WithContext("not_in_nav", strings.Join(missing, ",")).
		WithContext("duplicates", strings.Join(dups, ",")).
		Build()
}

// Result summarizes a generator run.
type Result struct {
	Files []string
}

// Generator writes placeholder pages below a content directory.
type Generator struct {
	contentDir string
	entries    []Entry
}

// NewGenerator returns a Generator for entries.
func NewGenerator(contentDir string, entries []Entry) *Generator {
	return &Generator{contentDir: contentDir, entries: entries}
}

// FilePath returns where e is written.
func (g *Generator) FilePath(e Entry) string {
	return filepath.Join(g.contentDir, filepath.FromSlash(strings.TrimPrefix(e.Route(), "/")), "index.md")
}

// Run writes every entry, overwriting existing files. The first directory
// or file that cannot be written aborts the run.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	var res Result
	for _, e := range g.entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := e.Validate(); err != nil {
			return res, err
		}

		data, err := Render(e)
		if err != nil {
			return res, err
		}

		file := g.FilePath(e)
		dir := filepath.Dir(file)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create page directory").
				WithContext("path", dir).
				Fatal().
				Build()
		}
		if err := os.WriteFile(file, data, 0o600); err != nil {
			return res, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write page").
				WithContext("path", file).
				Fatal().
				Build()
		}

		res.Files = append(res.Files, file)
		slog.Info("Created page", logfields.File(file), logfields.Route(e.Route()))
	}
	slog.Info("Generated pages", logfields.Count(len(res.Files)))
	return res, nil
}
