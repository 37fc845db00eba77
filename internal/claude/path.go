package claude

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/platform"
)

const (
	// ConfigFileName is the name of the Claude Desktop configuration file.
	ConfigFileName = "claude_desktop_config.json"

	// EnvVarAppData is the Windows environment variable pointing at the roaming application data folder.
	EnvVarAppData = "APPDATA"
)

// ConfigPath returns where Claude Desktop keeps its configuration on p.
// home is the user's home directory and getenv looks up environment variables.
// Only macOS and Windows have a known location; other platforms return ErrUnsupportedPlatform.
func ConfigPath(p platform.Platform, home string, getenv func(string) string) (string, error) {
	switch p {
	case platform.MacOS:
		if home == "" {
			return "", fmt.Errorf("home directory is not set")
		}
		return filepath.Join(home, "Library", "Application Support", "Claude", ConfigFileName), nil
	case platform.Windows:
		appData := ""
		if getenv != nil {
			appData = strings.TrimSpace(getenv(EnvVarAppData))
		}
		if appData == "" {
			if home == "" {
				return "", fmt.Errorf("neither %s nor the home directory is set", EnvVarAppData)
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Claude", ConfigFileName), nil
	default:
		return "", fmt.Errorf("%w: no Claude config location is known for %s", errors.ErrUnsupportedPlatform, p)
	}
}
