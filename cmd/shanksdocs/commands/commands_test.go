package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/scaffold"
	"git.home.luguber.info/inful/shanksdocs/internal/testutil"
)

// run parses args and executes the selected command inside a fresh
// working directory.
func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	t.Chdir(dir)

	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	kctx.BindTo(context.Background(), (*context.Context)(nil))
	return kctx.Run(&Global{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, cli)
}

func TestBuild_EmbeddedSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "build", "-o", "out", "--metrics-file", "build.prom"))

	testutil.Files(t, dir).
		Exists("out/index.html").
		Exists("out/docs/getting-started/index.html").
		Contains("out/assets/site.css", ".callout").
		Exists("build.prom")

	prom, err := os.ReadFile(filepath.Join(dir, "build.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `shanksdocs_build_outcomes_total{outcome="success"} 1`)
}

func TestCheck_EmbeddedSite(t *testing.T) {
	require.NoError(t, run(t, t.TempDir(), "check"))
}

func TestExplicitMissingConfig(t *testing.T) {
	err := run(t, t.TempDir(), "-c", "nope.yaml", "check")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInit_ThenCheckAndScaffold(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "init"))

	testutil.Files(t, dir).
		Exists(DefaultConfigPath).
		Exists("site/nav.yaml").
		Exists("site/content/docs/getting-started/index.md")

	require.NoError(t, run(t, dir, "check"))

	err := run(t, dir, "init")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	require.NoError(t, run(t, dir, "scaffold"))
	files := testutil.Files(t, filepath.Join(dir, "site", "content"))
	for _, e := range scaffold.DefaultEntries() {
		files.Contains(e.Route()[1:]+"/index.md", e.Title)
	}
}

func TestScaffold_RequiresContentDirectory(t *testing.T) {
	err := run(t, t.TempDir(), "scaffold")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestScaffold_ContentDirFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "scaffold", "--content-dir", "pages"))
	testutil.Files(t, dir).Exists("pages/docs/cli/new/index.md")
}

func TestCheck_JSONFormat(t *testing.T) {
	require.NoError(t, run(t, t.TempDir(), "check", "--format", "json", "--strict"))
}
