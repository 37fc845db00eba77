// Package errors defines domain-level errors used throughout the application.
//
// Per-target errors (unknown target, unsupported platform, command failure, not implemented)
// never abort an install batch; the installer converts them into outcomes.
// Config and settings errors propagate to the CLI, which prints them without a stack trace.
package errors

import (
	"errors"
)

var (
	// ErrUnknownTarget indicates that a requested name matches no runtime or MCP server in the catalog.
	ErrUnknownTarget = errors.New("unknown item")

	// ErrUnsupportedPlatform indicates that no command or path is defined for the current platform.
	// For installs it fails the single target; for config access it is a hard failure.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrCommandFailed indicates that an external command exited with a non-zero status.
	ErrCommandFailed = errors.New("command failed")

	// ErrNotImplemented indicates a catalog entry which is declared but has no install routine.
	ErrNotImplemented = errors.New("installation not implemented")

	// ErrConfigMalformed indicates that the Claude Desktop config exists but could not be parsed,
	// or does not have the expected top-level shape.
	// This is distinct from an absent config, which is not an error.
	ErrConfigMalformed = errors.New("malformed config")

	// ErrSettingsLoadFailed indicates that the devboot settings file exists but could not be loaded.
	ErrSettingsLoadFailed = errors.New("failed to load settings")
)
