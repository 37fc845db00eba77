package options

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/devboot-cli/devboot/internal/platform"
	"github.com/devboot-cli/devboot/internal/shell"
)

type CmdOption func(*CmdOptions) error

// CmdOptions holds the collaborators a command talks to, so tests can replace them.
type CmdOptions struct {
	// Platform is the detected host platform. The --platform flag takes precedence.
	Platform platform.Platform

	// Fs is used to read the settings file and the Claude Desktop config.
	Fs afero.Fs

	// Runner executes commands. When nil, commands run as real child processes.
	Runner shell.Runner

	// Getenv looks up environment variables.
	Getenv func(string) string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir func() (string, error)
}

func defaultOptions() CmdOptions {
	return CmdOptions{
		Platform:    platform.Current(),
		Fs:          afero.NewOsFs(),
		Getenv:      os.Getenv,
		UserHomeDir: os.UserHomeDir,
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithPlatform(p platform.Platform) CmdOption {
	return func(o *CmdOptions) error {
		if _, err := platform.Parse(string(p)); err != nil {
			return err
		}
		o.Platform = p
		return nil
	}
}

func WithFs(fs afero.Fs) CmdOption {
	return func(o *CmdOptions) error {
		if fs == nil {
			return fmt.Errorf("filesystem cannot be nil")
		}
		o.Fs = fs
		return nil
	}
}

func WithRunner(r shell.Runner) CmdOption {
	return func(o *CmdOptions) error {
		if r == nil {
			return fmt.Errorf("runner cannot be nil")
		}
		o.Runner = r
		return nil
	}
}

func WithGetenv(fn func(string) string) CmdOption {
	return func(o *CmdOptions) error {
		if fn == nil {
			return fmt.Errorf("getenv cannot be nil")
		}
		o.Getenv = fn
		return nil
	}
}

func WithUserHomeDir(fn func() (string, error)) CmdOption {
	return func(o *CmdOptions) error {
		if fn == nil {
			return fmt.Errorf("home directory func cannot be nil")
		}
		o.UserHomeDir = fn
		return nil
	}
}
