package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/printer"
)

type ConfigCmd struct {
	*internalcmd.BaseCmd
	Format internalcmd.OutputFormat
	opts   cmdopts.CmdOptions
}

func NewConfigCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ConfigCmd{
		BaseCmd: baseCmd,
		Format:  internalcmd.FormatText,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Prints the Claude Desktop configuration",
		Long:  c.longDescription(),
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	allowed := internalcmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCmd, nil
}

func (c *ConfigCmd) longDescription() string {
	return `Prints the Claude Desktop configuration file.

The file is read from the standard location on macOS and Windows, or from --claude-config.
A missing file is reported as not found; a file which cannot be parsed is an error.`
}

func (c *ConfigCmd) run(cmd *cobra.Command, _ []string) error {
	env, err := c.Environment(c.opts)
	if err != nil {
		return err
	}

	handler, err := internalcmd.FormatHandler[printer.ConfigResult](cmd.OutOrStdout(), c.Format, &printer.ConfigPrinter{})
	if err != nil {
		return err
	}

	reader, err := env.ClaudeReader()
	if err != nil {
		return handler.HandleError(err)
	}

	doc, err := reader.Read()
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(printer.ConfigResult{
		Path:   reader.Path(),
		Found:  doc != nil,
		Config: doc,
	})
}
