// Package cli implements the nerdcli command-line interface.
//
// The root command clears the terminal, prints a random quote from the
// configured quote files and draws a random picture next to or above it.
// The init subcommand writes the default configuration.
//
// Logs go to stderr through charmbracelet/log; --debug lowers the level to
// debug and appends a dump of the effective settings to the output.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "nerdcli"

var version = "dev"

// SetVersion sets the version shown by --version. main calls it with a
// value injected through ldflags.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the nerdcli command tree with ctx. stdin, stdout and stderr
// are the streams of the process.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           appName,
		Short:         "Add a bit of nerdiness to your terminal",
		Long:          `nerdcli prints a random quote next to a random picture, sized to fit the terminal and leave room for the prompt.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if opts.debug {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.overrides = overridesFromFlags(cmd, &opts)
			return runShow(cmd, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\n", appName, version))

	opts.addFlags(root)

	root.AddCommand(newInitCommand())

	return root
}
