package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devboot-cli/devboot/internal/claude"
	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	internalerrors "github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/printer"
)

type ListCmd struct {
	*internalcmd.BaseCmd
	Format internalcmd.OutputFormat
	opts   cmdopts.CmdOptions
}

func NewListCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ListCmd{
		BaseCmd: baseCmd,
		Format:  internalcmd.FormatText,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the runtimes and MCP servers devboot can install",
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

func (c *ListCmd) longDescription() string {
	return `Lists every runtime and MCP server in the catalog.

The status column means different things for the two kinds:
  - runtimes are 'installed' when their executable is found on the search path;
  - MCP servers are not executables, so they are 'registered' when they appear under
    'mcpServers' in the Claude Desktop config. No search path lookup is made for them.

When the Claude Desktop config is missing, unreadable or has no known location on this
platform, every MCP server is shown as not registered.`
}

func (c *ListCmd) run(cmd *cobra.Command, _ []string) error {
	env, err := c.Environment(c.opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	handler, err := internalcmd.FormatHandler[printer.CatalogEntry](
		out,
		c.Format,
		printer.NewCatalogListPrinter(env.Labels(), env.Color(out)),
	)
	if err != nil {
		return err
	}

	cat, err := env.Catalog()
	if err != nil {
		return handler.HandleError(err)
	}

	checker, err := env.Checker()
	if err != nil {
		return handler.HandleError(err)
	}

	entries := make([]printer.CatalogEntry, 0, len(cat.Runtimes())+len(cat.Servers()))
	for _, rt := range cat.Runtimes() {
		entries = append(entries, printer.CatalogEntry{
			Kind:        cat.Classify(rt.Name),
			Name:        rt.Name,
			Description: rt.Description,
			Present:     checker.Exists(cmd.Context(), rt.Name),
		})
	}

	doc := c.registrations(env)
	for _, s := range cat.Servers() {
		entries = append(entries, printer.CatalogEntry{
			Kind:        cat.Classify(s.Name),
			Name:        s.Name,
			Description: s.Description,
			Present:     doc != nil && doc.HasServer(s.Name),
		})
	}

	return handler.HandleResults(entries...)
}

// registrations reads the Claude config for the MCP server column.
// Problems with the config never fail the listing: the servers are shown as not registered.
func (c *ListCmd) registrations(env *internalcmd.Environment) *claude.Document {
	logger := c.Logger().Named("list")

	reader, err := env.ClaudeReader()
	if err != nil {
		if errors.Is(err, internalerrors.ErrUnsupportedPlatform) {
			logger.Debug("Skipping MCP registrations", "error", err)
		} else {
			logger.Warn("Cannot read MCP registrations", "error", err)
		}
		return nil
	}

	doc, err := reader.Read()
	if err != nil {
		logger.Warn("Cannot read MCP registrations", "path", reader.Path(), "error", err)
		return nil
	}

	return doc
}
