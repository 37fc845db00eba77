package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	internalcmd "github.com/devboot-cli/devboot/internal/cmd"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/files"
	"github.com/devboot-cli/devboot/internal/flags"
	"github.com/devboot-cli/devboot/internal/printer"
	"github.com/devboot-cli/devboot/internal/settings"
)

type SettingsCmd struct {
	*internalcmd.BaseCmd
	Format internalcmd.OutputFormat
	opts   cmdopts.CmdOptions
}

type SettingsInitCmd struct {
	*internalcmd.BaseCmd
	Force bool
	opts  cmdopts.CmdOptions
}

func NewSettingsCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SettingsCmd{
		BaseCmd: baseCmd,
		Format:  internalcmd.FormatText,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "settings",
		Short: "Prints the effective devboot settings",
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

	initCmd, err := NewSettingsInitCmd(baseCmd, opt...)
	if err != nil {
		return nil, err
	}
	cobraCmd.AddCommand(initCmd)

	return cobraCmd, nil
}

func (c *SettingsCmd) longDescription() string {
	return `Prints the settings devboot runs with: the values from the settings file,
with defaults for anything the file leaves out.

The file is read from --settings-file, $DEVBOOT_SETTINGS_FILE or $XDG_CONFIG_HOME/devboot/settings.toml.`
}

func (c *SettingsCmd) run(cmd *cobra.Command, _ []string) error {
	handler, err := internalcmd.FormatHandler[printer.SettingsResult](cmd.OutOrStdout(), c.Format, &printer.SettingsPrinter{})
	if err != nil {
		return err
	}

	env, err := c.Environment(c.opts)
	if err != nil {
		return handler.HandleError(err)
	}

	found, err := files.Exists(env.Fs(), env.SettingsFile)
	if err != nil {
		return handler.HandleError(err)
	}

	return handler.HandleResult(printer.SettingsResult{
		Path:     env.SettingsFile,
		Found:    found,
		Settings: env.Settings,
	})
}

func NewSettingsInitCmd(baseCmd *internalcmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SettingsInitCmd{
		BaseCmd: baseCmd,
		opts:    opts,
	}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Writes a settings file with the default values",
		Long: "Writes a settings file with the default values to the settings file location.\n" +
			"An existing file is left untouched unless --force is given.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cobraCmd.Flags().BoolVar(
		&c.Force,
		"force",
		false,
		"Overwrite an existing settings file",
	)

	return cobraCmd, nil
}

// run doesn't load the current settings, so a malformed file can be replaced with --force.
func (c *SettingsInitCmd) run(cmd *cobra.Command, _ []string) error {
	path := strings.TrimSpace(flags.SettingsFile)
	if path == "" {
		return fmt.Errorf("settings file path is not set, use --%s", flags.FlagNameSettingsFile)
	}

	if err := settings.Save(c.opts.Fs, path, settings.Default(), c.Force); err != nil {
		return err
	}

	c.Logger().Debug("Wrote default settings", "path", path, "force", c.Force)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)

	return nil
}
