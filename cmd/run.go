package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/launch/command"
)

// NewRunCmd runs the best-ranked executable candidate.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Run the executable closest to the current file",
		Long: `Run the best-ranked executable candidate, passing any extra
arguments through. Interactive selection among candidates belongs to the
host environment; this command takes the top of the ranking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			candidates, err := wf.Candidates(cmd.Context(), opts.File)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				fmt.Println("no candidates")
				return nil
			}

			return command.NewRunner().RunProgram(cmd.Context(), candidates[0].Path, args, "")
		},
	}
}
