package commands

import (
	"context"

	"git.home.luguber.info/inful/shanksdocs/internal/server"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr       string `short:"a" help:"Listen address (overrides server.addr)"`
	LiveReload bool   `name:"live-reload" help:"Watch the content directory and reload browsers on change"`
}

func (c *ServeCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Addr = c.Addr
	}
	if c.LiveReload {
		cfg.Server.LiveReload = true
	}
	if cfg.Server.LiveReload && cfg.UsesEmbeddedContent() {
		g.Logger.Info("Serving the bundled site; live reload needs content.directory")
	}

	srv, err := server.New(cfg, server.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
