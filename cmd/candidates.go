package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCandidatesCmd lists discovered executables ranked by similarity to the
// current file. The host's selection UI consumes this ordering.
func NewCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "List executables under the build directory, ranked by similarity to the current file",
		Long: `List executables under the resolved build directory.

Candidates are discovered recursively and ordered by the edit distance
between their basename and the current file's basename (closest first).
Candidates at equal distance keep their discovery order.

An empty list means nothing was found; it is not an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			candidates, err := wf.Candidates(cmd.Context(), opts.File)
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(candidates, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			if len(candidates) == 0 {
				fmt.Println("no candidates")
				return nil
			}
			for _, c := range candidates {
				fmt.Printf("%4d  %s\n", c.Distance, c.Path)
			}
			return nil
		},
	}
}
