package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/devboot-cli/devboot/internal/files"
)

const (
	// Env vars
	EnvVarLogLevel     = "DEVBOOT_LOG_LEVEL"
	EnvVarLogPath      = "DEVBOOT_LOG_PATH"
	EnvVarSettingsFile = "DEVBOOT_SETTINGS_FILE"
	EnvVarClaudeConfig = "DEVBOOT_CLAUDE_CONFIG"
	EnvVarPlatform     = "DEVBOOT_PLATFORM"

	// Defaults
	DefaultLogLevel = "warn"
	DefaultLogPath  = ""

	// Flag names
	FlagNameLogLevel     = "log-level"
	FlagNameLogPath      = "log-path"
	FlagNameSettingsFile = "settings-file"
	FlagNameClaudeConfig = "claude-config"
	FlagNamePlatform     = "platform"
)

var (
	LogLevel     string
	LogPath      string
	SettingsFile string
	ClaudeConfig string
	Platform     string
)

// InitFlags registers the global flags on fs.
// Each flag defaults to its environment variable, falling back to the built-in default.
func InitFlags(fs *pflag.FlagSet) {
	initLogger(fs)
	initSettingsFile(fs)
	initClaudeConfig(fs)
	initPlatform(fs)
}

func initLogger(fs *pflag.FlagSet) {
	LogLevel = DefaultLogLevel
	if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
		LogLevel = strings.ToLower(env)
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level (trace, debug, info, warn, error, off)")

	LogPath = fromEnv(EnvVarLogPath, DefaultLogPath)
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to a log file, logs go to stderr when empty")
}

func initSettingsFile(fs *pflag.FlagSet) {
	def, err := files.DefaultSettingsFile()
	if err != nil {
		def = ""
	}

	SettingsFile = fromEnv(EnvVarSettingsFile, def)
	fs.StringVar(&SettingsFile, FlagNameSettingsFile, SettingsFile, "path to the devboot settings file")
}

func initClaudeConfig(fs *pflag.FlagSet) {
	ClaudeConfig = fromEnv(EnvVarClaudeConfig, "")
	fs.StringVar(
		&ClaudeConfig,
		FlagNameClaudeConfig,
		ClaudeConfig,
		"path to the Claude Desktop config file, overrides the per-platform location",
	)
}

func initPlatform(fs *pflag.FlagSet) {
	Platform = strings.ToLower(fromEnv(EnvVarPlatform, ""))
	fs.StringVar(&Platform, FlagNamePlatform, Platform, "simulate a platform (windows, macos, linux, other)")
	_ = fs.MarkHidden(FlagNamePlatform)
}

func fromEnv(key string, def string) string {
	if env := strings.TrimSpace(os.Getenv(key)); env != "" {
		return env
	}

	return def
}
