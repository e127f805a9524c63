package commands

import (
	"fmt"

	"git.home.luguber.info/inful/shanksdocs/internal/config"
	"git.home.luguber.info/inful/shanksdocs/internal/defaultsite"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file and exported pages"`
}

func (i *InitCmd) Run(root *CLI) error {
	fmt.Println("Initializing shanksdocs project")
	fmt.Printf("Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		fmt.Println("Initialization failed")
		return err
	}

	// The example configuration points at config.DefaultSiteDir.
	n, err := defaultsite.Export(config.DefaultSiteDir, i.Force)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d files to %s\n", n, config.DefaultSiteDir)
	return nil
}
