// Package main is the entry point for the dbaccessor CLI.
package main

import (
	"os"

	"github.com/satishbabariya/dbaccessor/cmd/dbaccessor/commands"
	"github.com/satishbabariya/dbaccessor/internal/ui"
)

func main() {
	if err := run(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func run() error {
	return commands.NewRootCommand().Execute()
}
