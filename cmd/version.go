package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
)

var version = "dev" // Set at build time using -ldflags

// Version returns the build version, falling back to the module version for 'go install' builds.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version
}

type VersionCmd struct {
	*internalcmd.BaseCmd
}

func NewVersionCmd(baseCmd *internalcmd.BaseCmd, _ ...cmdopts.CmdOption) (*cobra.Command, error) {
	c := &VersionCmd{BaseCmd: baseCmd}

	return &cobra.Command{
		Use:   "version",
		Short: "Prints the devboot version",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}, nil
}

func (c *VersionCmd) run(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cmd.Root().Name(), Version())
	return err
}
