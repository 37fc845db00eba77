package cmd

import (
	"io"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/devboot-cli/devboot/internal/catalog"
	"github.com/devboot-cli/devboot/internal/claude"
	cmdopts "github.com/devboot-cli/devboot/internal/cmd/options"
	"github.com/devboot-cli/devboot/internal/files"
	"github.com/devboot-cli/devboot/internal/flags"
	"github.com/devboot-cli/devboot/internal/installer"
	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/printer"
	"github.com/devboot-cli/devboot/internal/settings"
	"github.com/devboot-cli/devboot/internal/shell"
)

// Environment is what a command works with, resolved once from flags, settings and options.
type Environment struct {
	Platform     platform.Platform
	Settings     settings.Settings
	SettingsFile string

	logger      hclog.Logger
	fs          afero.Fs
	runner      shell.Runner
	getenv      func(string) string
	userHomeDir func() (string, error)
}

// Environment resolves the platform and loads the settings file.
func (c *BaseCmd) Environment(opts cmdopts.CmdOptions) (*Environment, error) {
	p := opts.Platform
	if name := strings.TrimSpace(flags.Platform); name != "" {
		parsed, err := platform.Parse(name)
		if err != nil {
			return nil, err
		}
		p = parsed
	}

	s, err := settings.Load(opts.Fs, flags.SettingsFile)
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	logger.Debug("Resolved environment", "platform", p, "settings", flags.SettingsFile)

	return &Environment{
		Platform:     p,
		Settings:     s,
		SettingsFile: flags.SettingsFile,
		logger:       logger,
		fs:           opts.Fs,
		runner:       opts.Runner,
		getenv:       opts.Getenv,
		userHomeDir:  opts.UserHomeDir,
	}, nil
}

// Fs returns the filesystem used for settings and the Claude config.
func (e *Environment) Fs() afero.Fs {
	return e.fs
}

// Runner returns the injected runner, or one that starts real processes configured by the settings.
func (e *Environment) Runner() (shell.Runner, error) {
	if e.runner != nil {
		return e.runner, nil
	}

	return shell.NewExecRunner(
		e.logger,
		e.Platform,
		shell.WithShell(e.Settings.Shell),
		shell.WithTimeout(time.Duration(e.Settings.InstallTimeout)),
	)
}

// Checker returns an existence checker backed by Runner.
func (e *Environment) Checker() (shell.Checker, error) {
	r, err := e.Runner()
	if err != nil {
		return shell.Checker{}, err
	}

	return shell.Checker{Platform: e.Platform, Runner: r}, nil
}

// Catalog returns the built-in catalog with the configured version pins.
func (e *Environment) Catalog() (*catalog.Catalog, error) {
	return catalog.Default(e.Settings.Versions)
}

// Installer returns an installer writing progress to out.
// In a dry run install commands are printed to out instead of being executed,
// while existence checks still run for real.
func (e *Environment) Installer(out io.Writer, dryRun bool) (*installer.Installer, error) {
	cat, err := e.Catalog()
	if err != nil {
		return nil, err
	}

	runner, err := e.Runner()
	if err != nil {
		return nil, err
	}
	if dryRun {
		runner = &shell.RecordingRunner{Lookups: runner, Out: out}
	}

	return installer.NewInstaller(
		e.logger,
		e.Platform,
		runner,
		cat,
		installer.WithOutput(out),
		installer.WithNotices(e.Labels().Notices),
	)
}

// ClaudeConfigPath returns the Claude Desktop config location.
// The --claude-config flag wins over the settings file, which wins over the per-platform default.
func (e *Environment) ClaudeConfigPath() (string, error) {
	home, homeErr := e.userHomeDir()

	for _, override := range []string{flags.ClaudeConfig, e.Settings.ClaudeConfig} {
		override = strings.TrimSpace(override)
		if override == "" {
			continue
		}
		if homeErr == nil {
			override = files.ExpandHome(override, home)
		}
		return override, nil
	}

	if homeErr != nil {
		home = ""
	}

	return claude.ConfigPath(e.Platform, home, e.getenv)
}

// ClaudeReader returns a reader for the Claude Desktop config.
func (e *Environment) ClaudeReader() (*claude.Reader, error) {
	path, err := e.ClaudeConfigPath()
	if err != nil {
		return nil, err
	}

	return claude.NewReader(e.fs, path)
}

// Language returns the language for user-facing labels.
func (e *Environment) Language() language.Tag {
	return printer.ResolveLanguage(e.Settings.Language, e.getenv("LANG"))
}

// Labels returns the localized labels.
func (e *Environment) Labels() printer.Labels {
	return printer.LabelsFor(e.Language())
}

// Color reports whether output to w may be colored.
func (e *Environment) Color(w io.Writer) bool {
	return e.getenv("NO_COLOR") == "" && printer.IsTerminal(w)
}
