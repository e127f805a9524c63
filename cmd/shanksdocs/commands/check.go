package commands

import (
	"os"

	"git.home.luguber.info/inful/shanksdocs/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" help:"Report format" enum:"text,json" default:"text"`
	Strict bool   `help:"Treat warnings as errors"`
}

func (c *CheckCmd) Run(root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	s, err := site.Load(cfg)
	if err != nil {
		return err
	}

	report := s.Check()
	if err := site.NewFormatter(c.Format).Format(os.Stdout, report); err != nil {
		return err
	}
	if c.Strict {
		report.Errors = append(report.Errors, report.Warnings...)
	}
	return report.Err()
}
