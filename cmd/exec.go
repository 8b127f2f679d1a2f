package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/launch/command"
	"github.com/grovetools/launch/template"
)

// NewExecCmd expands a command template and runs it through the shell.
func NewExecCmd() *cobra.Command {
	var inBuildDir bool

	cmd := &cobra.Command{
		Use:   "exec <template>",
		Short: "Expand a command template and run it",
		Long: `Expand a command template's tokens and run the result via 'sh -c'.

A trailing '#' comment in the template is stripped before expansion, so
configured entries can carry a disambiguating suffix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			line, err := wf.ExpandCommand(cmd.Context(), template.StripComment(args[0]), opts.File)
			if err != nil {
				return err
			}

			dir := ""
			if inBuildDir {
				dir, err = wf.BuildDir(cmd.Context(), opts.File)
				if err != nil {
					return err
				}
			}

			return command.NewRunner().RunShell(cmd.Context(), line, dir)
		},
	}

	cmd.Flags().BoolVar(&inBuildDir, "in-build-dir", false, "Run the command inside the resolved build directory")
	return cmd
}
