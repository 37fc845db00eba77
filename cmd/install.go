package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/installer"
	"github.com/devboot-cli/devboot/internal/printer"
)

type InstallCmd struct {
	*internalcmd.BaseCmd
	All    bool
	DryRun bool
	Format internalcmd.OutputFormat
	opts   cmdopts.CmdOptions
}

func NewInstallCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InstallCmd{
		BaseCmd: baseCmd,
		Format:  internalcmd.FormatText,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "install <item...>",
		Short: "Installs runtimes and MCP servers",
		Long:  c.longDescription(),
		RunE:  c.run,
	}

	cobraCmd.Flags().BoolVar(
		&c.All,
		"all",
		false,
		"Install every runtime in the catalog",
	)

	cobraCmd.Flags().BoolVar(
		&c.DryRun,
		"dry-run",
		false,
		"Print the install commands instead of running them",
	)

	allowed := internalcmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Specify the output format of the summary (one of: %s)", allowed.String()),
	)

	return cobraCmd, nil
}

func (c *InstallCmd) longDescription() string {
	return `Installs each named item, one after another, in the order given.

Items already found on the search path are skipped. On macOS, Homebrew is used when it is
installed; otherwise the vendor's install script runs. Unknown names and failed installs are
reported in the summary and never stop the remaining items.

The command always finishes with a summary and exits successfully, even when items failed.`
}

func (c *InstallCmd) run(cmd *cobra.Command, args []string) error {
	env, err := c.Environment(c.opts)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(args))
	for _, a := range args {
		names = append(names, strings.TrimSpace(a))
	}

	if c.All {
		cat, err := env.Catalog()
		if err != nil {
			return err
		}
		names = append(names, cat.RuntimeNames()...)
	}

	if len(names) == 0 {
		return fmt.Errorf("at least one item is required (or use --all)")
	}

	out := cmd.OutOrStdout()

	handler, err := internalcmd.FormatHandler[installer.Entry](
		out,
		c.Format,
		printer.NewInstallResultsPrinter(env.Labels(), env.Color(out)),
	)
	if err != nil {
		return err
	}

	// Progress notices would corrupt machine readable output, so they go to stderr there.
	progress := out
	if c.Format != internalcmd.FormatText {
		progress = cmd.ErrOrStderr()
	}

	inst, err := env.Installer(progress, c.DryRun)
	if err != nil {
		return handler.HandleError(err)
	}

	results := inst.InstallAll(cmd.Context(), names)

	return handler.HandleResults(results.Entries()...)
}
