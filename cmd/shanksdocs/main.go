package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/shanksdocs/cmd/shanksdocs/commands"
	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("shanksdocs"),
		kong.Description("Build and preview the Shanks documentation site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	parser.BindTo(ctx, (*context.Context)(nil))
	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	stop()

	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
