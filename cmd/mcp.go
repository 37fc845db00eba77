package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/printer"
)

type MCPCmd struct {
	*internalcmd.BaseCmd
	Format internalcmd.OutputFormat
	opts   cmdopts.CmdOptions
}

func NewMCPCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &MCPCmd{
		BaseCmd: baseCmd,
		Format:  internalcmd.FormatText,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Lists the MCP servers registered with Claude Desktop",
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

func (c *MCPCmd) longDescription() string {
	return `Lists the names under 'mcpServers' in the Claude Desktop configuration, in file order.
Nothing is listed when the file or the 'mcpServers' section is missing.`
}

func (c *MCPCmd) run(cmd *cobra.Command, _ []string) error {
	env, err := c.Environment(c.opts)
	if err != nil {
		return err
	}

	handler, err := internalcmd.FormatHandler[string](cmd.OutOrStdout(), c.Format, &printer.ServerListPrinter{})
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

	if doc == nil {
		c.Logger().Debug("Claude config not found", "path", reader.Path())
		return handler.HandleResults()
	}

	return handler.HandleResults(doc.Servers()...)
}
