package site

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/metrics"
	"git.home.luguber.info/inful/shanksdocs/internal/observability"
	"git.home.luguber.info/inful/shanksdocs/internal/workspace"
)

const (
	StageCheck   = "check"
	StageRender  = "render"
	StageAssets  = "assets"
	StagePromote = "promote"
)

// BuildResult summarizes a finished build.
type BuildResult struct {
	BuildID   string
	OutputDir string
	Pages     int
	Duration  time.Duration
}

// Build renders every page into outDir/<route>/index.html and writes the
// stylesheet to outDir/assets/site.css. Output is staged beside outDir and
// promoted only when every stage succeeded.
func (s *Site) Build(ctx context.Context, outDir string) (BuildResult, error) {
	start := time.Now()
	res := BuildResult{BuildID: observability.NewBuildID(), OutputDir: outDir}
	ctx = observability.WithBuildID(ctx, res.BuildID)
	observability.InfoContext(ctx, "Starting build", logfields.Path(outDir), logfields.Count(len(s.routes)))

	err := s.build(ctx, outDir, &res)
	res.Duration = time.Since(start)
	s.recorder.ObserveBuildDuration(res.Duration)

	switch {
	case err == nil:
		s.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
		s.recorder.SetPagesRendered(res.Pages)
		observability.InfoContext(ctx, "Build complete",
			logfields.Count(res.Pages),
			logfields.DurationMS(float64(res.Duration.Milliseconds())))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		s.recorder.IncBuildOutcome(metrics.OutcomeCanceled)
	default:
		s.recorder.IncBuildOutcome(metrics.OutcomeFailed)
	}
	return res, err
}

func (s *Site) build(ctx context.Context, outDir string, res *BuildResult) error {
	if err := s.stage(ctx, StageCheck, func(ctx context.Context) error {
		report := s.Check()
		for _, w := range report.Warnings {
			observability.WarnContext(ctx, w.Message, logfields.Route(w.Route))
		}
		for _, e := range report.Errors {
			observability.ErrorContext(ctx, e.Message, logfields.Route(e.Route), slog.String("target", e.Target))
		}
		return report.Err()
	}); err != nil {
		return err
	}

	st, err := workspace.Begin(outDir)
	if err != nil {
		return err
	}
	defer st.Abort()

	if err := s.stage(ctx, StageRender, func(ctx context.Context) error {
		for _, route := range s.routes {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := s.Render(route)
			if err != nil {
				return err
			}
			if err := writeFile(filepath.Join(st.Path(), OutputPath(route)), html); err != nil {
				return err
			}
			observability.DebugContext(observability.WithRoute(ctx, route), "Rendered page")
			res.Pages++
		}
		return nil
	}); err != nil {
		return err
	}

	if err := s.stage(ctx, StageAssets, func(context.Context) error {
		css, err := s.CSS()
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(st.Path(), filepath.FromSlash(strings.TrimPrefix(StylesheetPath, "/"))), css)
	}); err != nil {
		return err
	}

	return s.stage(ctx, StagePromote, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return st.Promote()
	})
}

func (s *Site) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	err := fn(ctx)
	s.recorder.ObserveStageDuration(name, time.Since(start))

	switch {
	case err == nil:
		s.recorder.IncStageResult(name, metrics.ResultSuccess)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		s.recorder.IncStageResult(name, metrics.ResultCanceled)
	default:
		s.recorder.IncStageResult(name, metrics.ResultFatal)
		observability.ErrorContext(ctx, "Build stage failed", logfields.Error(err))
	}
	return err
}

// OutputPath maps a route to its file below the output root.
func OutputPath(route string) string {
	route = strings.Trim(NormalizeRoute(route), "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	// #nosec G306 -- published site files are world readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output file").
			WithContext("path", path).
			Build()
	}
	return nil
}
