package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/devboot-cli/devboot/internal/perms"
)

const (
	// EnvVarXDGConfigHome is the XDG Base Directory env var name for config files.
	EnvVarXDGConfigHome = "XDG_CONFIG_HOME"

	// SettingsFileName is the name of the devboot settings file inside the user config directory.
	SettingsFileName = "settings.toml"
)

// AppDirName returns the name of the application directory used for user-specific files.
func AppDirName() string {
	return "devboot"
}

// UserSpecificConfigDir returns the directory that should be used to store any user-specific configuration.
// It adheres to the XDG Base Directory Specification, respecting the XDG_CONFIG_HOME environment variable.
// When XDG_CONFIG_HOME is not set, it defaults to ~/.config/devboot
// See: https://specifications.freedesktop.org/basedir-spec/latest/
func UserSpecificConfigDir() (string, error) {
	if ch, ok := os.LookupEnv(EnvVarXDGConfigHome); ok && strings.TrimSpace(ch) != "" {
		home := strings.TrimSpace(ch)
		if !filepath.IsAbs(home) {
			return "", fmt.Errorf("environment variable '%s' must be an absolute path, got: %s", EnvVarXDGConfigHome, home)
		}
		return filepath.Join(home, AppDirName()), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", AppDirName()), nil
}

// DefaultSettingsFile returns the default location of the settings file.
func DefaultSettingsFile() (string, error) {
	dir, err := UserSpecificConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, SettingsFileName), nil
}

// Exists reports whether path exists on fs.
// Errors other than 'not exist' are returned so callers don't mistake an unreadable file for a missing one.
func Exists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}

	return false, fmt.Errorf("could not stat '%s': %w", path, err)
}

// EnsureDir creates a directory (and parents) with regular permissions if it doesn't exist,
// and verifies that the path is a directory if it does.
func EnsureDir(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(path, perms.RegularDir); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", path, err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", path)
	}

	return nil
}

// ExpandHome replaces a leading '~' with the user's home directory.
func ExpandHome(path string, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:])
	}

	return path
}
