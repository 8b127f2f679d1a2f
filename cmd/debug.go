package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/launch/command"
	"github.com/grovetools/launch/template"
)

// NewDebuggersCmd lists the debugger table.
func NewDebuggersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debuggers",
		Short: "List the configured debugger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			entries := wf.DebuggerTable().Entries()

			if opts.JSONOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%-12s %s\n", e.Label, template.StripComment(e.Pattern))
			}
			return nil
		},
	}
}

// NewDebugCmd launches the best candidate under a configured debugger.
func NewDebugCmd() *cobra.Command {
	var exe string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "debug <debugger>",
		Short: "Launch an executable under a debugger",
		Long: `Launch an executable under the named debugger entry.

Without --exe, the best-ranked candidate for the current file is used.
With --dry-run, the full command line is printed instead of executed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, opts, err := loadWorkflow(cmd)
			if err != nil {
				return err
			}

			executable := exe
			if executable == "" {
				candidates, err := wf.Candidates(cmd.Context(), opts.File)
				if err != nil {
					return err
				}
				if len(candidates) == 0 {
					fmt.Println("no candidates")
					return nil
				}
				executable = candidates[0].Path
			}

			entry, line, err := wf.ResolveDebugger(cmd.Context(), args[0], executable, opts.File)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Println(line)
				return nil
			}

			values, err := wf.Values(cmd.Context(), opts.File)
			if err != nil {
				return err
			}
			return entry.Launch(cmd.Context(), command.NewRunner(), executable, "", values)
		},
	}

	cmd.Flags().StringVar(&exe, "exe", "", "Executable to debug (defaults to the best-ranked candidate)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the debugger command line without running it")
	return cmd
}
