package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
)

// showTopics are the commands 'show' can describe.
var showTopics = []string{"install", "list", "config", "mcp"}

type ShowCmd struct {
	*internalcmd.BaseCmd
}

func NewShowCmd(baseCmd *internalcmd.BaseCmd, _ ...cmdopts.CmdOption) (*cobra.Command, error) {
	c := &ShowCmd{BaseCmd: baseCmd}

	return &cobra.Command{
		Use:       fmt.Sprintf("show <%s>", strings.Join(showTopics, "|")),
		Short:     "Shows detailed help for a command",
		Long:      "Shows the detailed description and usage of one of: " + strings.Join(showTopics, ", "),
		ValidArgs: showTopics,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE:      c.run,
	}, nil
}

func (c *ShowCmd) run(cmd *cobra.Command, args []string) error {
	topic, _, err := cmd.Root().Find(args[:1])
	if err != nil || topic == cmd.Root() {
		return fmt.Errorf("no help available for '%s'", args[0])
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s: %s\n\n", topic.Name(), topic.Short)
	if topic.Long != "" {
		_, _ = fmt.Fprintf(out, "%s\n\n", topic.Long)
	}
	_, _ = fmt.Fprintf(out, "Usage:\n  %s\n", topic.UseLine())

	if fl := topic.LocalFlags().FlagUsages(); fl != "" {
		_, _ = fmt.Fprintf(out, "\nFlags:\n%s", fl)
	}

	return nil
}
