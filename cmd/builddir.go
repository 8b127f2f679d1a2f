package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewBuildDirCmd prints the resolved build directory.
func NewBuildDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-dir",
		Short: "Print the resolved build directory",
		Long: `Print the build directory the other commands would search.

Resolution tries, in order: the build_dir override from launch.yml, the
project root, and the current file's directory. An empty result means none
of the layers produced a directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			dir, err := wf.BuildDir(cmd.Context(), opts.File)
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				data, err := json.MarshalIndent(map[string]string{"build_dir": dir}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(dir)
			return nil
		},
	}
}
