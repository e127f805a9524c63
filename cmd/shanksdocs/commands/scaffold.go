package commands

import (
	"context"
	"fmt"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/nav"
	"git.home.luguber.info/inful/shanksdocs/internal/scaffold"
)

// ScaffoldCmd implements the 'scaffold' command.
type ScaffoldCmd struct {
	ContentDir string `name:"content-dir" help:"Content directory to write into (overrides content.directory)" type:"path"`
}

func (c *ScaffoldCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	dir := cfg.Content.Directory
	if c.ContentDir != "" {
		dir = c.ContentDir
	}
	if dir == "" {
		return ferrors.ValidationError("scaffold needs a content directory (set content.directory or --content-dir)").Build()
	}

	entries := scaffold.DefaultEntries()
	if c.ContentDir == "" {
		// Placeholders should line up with the sidebar they will be reached from.
		if tree, err := nav.LoadFile(cfg.Content.NavFile); err == nil {
			if err := scaffold.CheckAgainst(tree, entries); err != nil {
				g.Logger.Warn("Scaffold entries differ from navigation", logfields.Error(err))
			}
		}
	}

	res, err := scaffold.NewGenerator(dir, entries).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d pages under %s\n", len(res.Files), dir)
	return nil
}
