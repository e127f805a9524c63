// Package commands implements the shanksdocs subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/shanksdocs/internal/config"
)

// DefaultConfigPath is read when -c is not given. Its absence is not an
// error: commands then run against the embedded site.
const DefaultConfigPath = "shanksdocs.yaml"

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"shanksdocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Render every page into the output directory"`
	Serve    ServeCmd    `cmd:"" help:"Serve the site locally, optionally reloading on changes"`
	Scaffold ScaffoldCmd `cmd:"" help:"Write placeholder pages for every planned docs route"`
	Check    CheckCmd    `cmd:"" help:"Cross-check navigation, pages and internal links"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration and export the bundled site"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig reads the configured file. A missing default file yields the
// embedded defaults; a missing file named with -c is an error.
func (c *CLI) LoadConfig() (*config.Config, error) {
	return config.LoadOrDefault(c.Config, c.Config != DefaultConfigPath)
}
