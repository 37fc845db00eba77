package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/flags"
)

type RootCmd struct {
	*cmd.BaseCmd
}

// Execute runs the devboot CLI and exits with status 1 on error.
// Ctrl-C cancels the context passed to every command, which stops a running installer.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := &cmd.BaseCmd{}
	rootCmd, err := NewRootCmd(base)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	err = rootCmd.ExecuteContext(ctx)
	if closeErr := base.Close(); closeErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", closeErr)
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Options are passed down to every sub-command.
func NewRootCmd(c *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	root := &RootCmd{BaseCmd: c}

	rootCmd := &cobra.Command{
		Use:          cmd.AppName + " <command> [args]",
		Short:        "Installs JavaScript runtimes and inspects the Claude Desktop configuration.",
		Long:         root.longDescription(),
		SilenceUsage: true,
		Version:      Version(),
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	fns := []func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error){
		NewInstallCmd,
		NewListCmd,
		NewShowCmd,
		NewConfigCmd,
		NewMCPCmd,
		NewSettingsCmd,
		NewVersionCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(c, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `devboot prepares a machine for JavaScript and MCP development.

It detects the operating system, checks which runtimes are already on the search path,
and runs the matching installer for the rest (bun, node, uv). It also reads the Claude
Desktop configuration file and reports the MCP servers registered in it.`
}
