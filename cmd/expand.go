package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExpandCmd expands a command template's tokens without running it.
func NewExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <template>",
		Short: "Expand placeholder tokens in a command template",
		Long: `Expand the placeholder tokens in a command template.

Tokens: %a absolute path, %f file name, %n stem, %e extension,
%d directory, %p project root, %b build directory. Unknown %x sequences
pass through unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			expanded, err := wf.ExpandCommand(cmd.Context(), args[0], opts.File)
			if err != nil {
				return err
			}

			fmt.Println(expanded)
			return nil
		},
	}
}

// NewTemplatesCmd lists the configured command templates in offer order.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List configured command templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, _, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			for _, t := range wf.Templates() {
				fmt.Println(t)
			}
			return nil
		},
	}
}
