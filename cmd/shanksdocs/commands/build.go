package commands

import (
	"context"
	"fmt"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/metrics"
	"git.home.luguber.info/inful/shanksdocs/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory (overrides output.directory)"`
	MetricsFile string `name:"metrics-file" help:"Write build metrics in Prometheus text format to this file" type:"path"`
}

func (b *BuildCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	outDir := cfg.Output.Directory
	if b.Output != "" {
		outDir = b.Output
	}

	reg := prom.NewRegistry()
	s, err := site.Load(cfg, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	if err != nil {
		return err
	}

	res, buildErr := s.Build(ctx, outDir)
	if b.MetricsFile != "" {
		if err := prom.WriteToTextfile(b.MetricsFile, reg); err != nil {
			g.Logger.Warn("Failed to write metrics file", logfields.Path(b.MetricsFile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		if ctx.Err() != nil {
			return ferrors.WrapError(buildErr, ferrors.CategoryRuntime, "build canceled").Build()
		}
		return buildErr
	}

	g.Logger.Info("Build complete",
		logfields.BuildID(res.BuildID),
		logfields.Path(res.OutputDir),
		logfields.Count(res.Pages),
		slog.Duration("duration", res.Duration))
	fmt.Printf("Built %d pages into %s\n", res.Pages, res.OutputDir)
	return nil
}
