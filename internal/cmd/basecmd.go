package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/devboot-cli/devboot/internal/flags"
	"github.com/devboot-cli/devboot/internal/perms"
)

// AppName is the name of the binary and of the root logger.
const AppName = "devboot"

type BaseCmd struct {
	logger  hclog.Logger
	logFile *os.File
}

// SetLogger updates the command's logger
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command, creating one from the flags on first use.
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	var output io.Writer = os.Stderr
	if logPath := strings.TrimSpace(flags.LogPath); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perms.RegularFile)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to open log file (%s): %v, using stderr\n", logPath, err)
		} else {
			c.logFile = f
			output = f
		}
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   AppName,
		Level:  LogLevel(flags.LogLevel),
		Output: output,
	})

	return c.logger
}

// LogLevel converts a level name into an hclog level, defaulting to warn for unknown names.
func LogLevel(name string) hclog.Level {
	switch lvl := strings.ToLower(strings.TrimSpace(name)); lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return hclog.LevelFromString(lvl)
	default:
		return hclog.LevelFromString(flags.DefaultLogLevel)
	}
}

// Close releases the --log-path file, if one was opened.
// Call it once the command has finished: nothing may be logged afterwards.
func (c *BaseCmd) Close() error {
	if c.logFile == nil {
		return nil
	}

	f := c.logFile
	c.logFile = nil

	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close log file '%s': %w", f.Name(), err)
	}

	return nil
}
