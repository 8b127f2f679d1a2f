package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grovetools/launch/cli"
	"github.com/grovetools/launch/config"
	"github.com/grovetools/launch/logging"
	"github.com/grovetools/launch/workflow"
)

// loadWorkflow builds a Workflow from the command's flags. The --file flag
// supplies the current-file context; it may be empty (a context with no
// backing file is valid and degrades to cwd-based detection).
func loadWorkflow(cmd *cobra.Command) (*workflow.Workflow, cli.CommandOptions, error) {
	opts := cli.GetOptions(cmd)

	var cfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, opts, err
	}

	applyVerbosity(cfg, opts.Verbose)
	logging.Configure(cfg.Logging)
	log := cli.GetLogger(cmd)

	if opts.File != "" {
		if abs, err := filepath.Abs(opts.File); err == nil {
			opts.File = abs
		}
	}

	log.WithField("file", opts.File).Debug("assembled workflow")
	return workflow.New(cfg, nil), opts, nil
}

// applyVerbosity lets the --verbose flag win over the configured log level.
func applyVerbosity(cfg *config.Config, verbose bool) {
	if verbose {
		cfg.Logging.Level = "debug"
	}
}
