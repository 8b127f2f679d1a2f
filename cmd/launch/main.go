package main

import (
	"os"

	"github.com/grovetools/launch/cli"
	"github.com/grovetools/launch/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"launch",
		"Locate build artifacts and launch parameterized commands",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewBuildDirCmd())
	rootCmd.AddCommand(cmd.NewCandidatesCmd())
	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewExpandCmd())
	rootCmd.AddCommand(cmd.NewTemplatesCmd())
	rootCmd.AddCommand(cmd.NewExecCmd())
	rootCmd.AddCommand(cmd.NewDebuggersCmd())
	rootCmd.AddCommand(cmd.NewDebugCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		verbose := false
		for _, arg := range os.Args[1:] {
			if arg == "-v" || arg == "--verbose" {
				verbose = true
			}
		}
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
