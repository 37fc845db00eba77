// Package settings loads the devboot settings file.
//
// Settings are optional: a missing file yields the defaults, and any key left out of the file
// keeps its default value. Unknown keys are rejected so that typos don't go unnoticed.
package settings

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/devboot-cli/devboot/internal/catalog"
	"github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/files"
	"github.com/devboot-cli/devboot/internal/perms"
	"github.com/devboot-cli/devboot/internal/shell"
)

// shellPattern accepts a bare executable name or a path without whitespace or shell metacharacters.
var shellPattern = regexp.MustCompile(`^[A-Za-z0-9._/\\:-]+$`)

// Settings are the user's devboot preferences.
type Settings struct {
	// Language selects the language of summary labels (e.g. "en", "ko"). Empty means use LANG.
	Language string `toml:"language" json:"language" yaml:"language"`

	// Shell interprets install scripts on macOS and Linux.
	Shell string `toml:"shell" json:"shell" yaml:"shell"`

	// InstallTimeout limits each install command. Zero means no limit.
	InstallTimeout Duration `toml:"install_timeout" json:"install_timeout" yaml:"install_timeout"`

	// ClaudeConfig overrides the location of the Claude Desktop config file.
	ClaudeConfig string `toml:"claude_config" json:"claude_config" yaml:"claude_config"`

	// Versions pins the versions substituted into install scripts.
	Versions catalog.Versions `toml:"versions" json:"versions" yaml:"versions"`
}

// Duration is a time.Duration written as a string such as "10m".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)

	return nil
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Shell:    shell.DefaultPOSIXShell,
		Versions: catalog.DefaultVersions(),
	}
}

// Validate checks every value which ends up in a command line or a lookup.
func (s Settings) Validate() error {
	if s.Language != "" {
		if _, err := language.Parse(s.Language); err != nil {
			return fmt.Errorf("invalid language '%s': %w", s.Language, err)
		}
	}

	if !shellPattern.MatchString(s.Shell) {
		return fmt.Errorf("invalid shell '%s'", s.Shell)
	}

	if s.InstallTimeout < 0 {
		return fmt.Errorf("install_timeout cannot be negative, got %s", time.Duration(s.InstallTimeout))
	}

	if err := s.Versions.Validate(); err != nil {
		return fmt.Errorf("invalid versions: %w", err)
	}

	return nil
}

// Load reads the settings file at path, returning the defaults when it doesn't exist.
// Errors wrap ErrSettingsLoadFailed.
func Load(fs afero.Fs, path string) (Settings, error) {
	s := Default()

	ok, err := files.Exists(fs, path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", errors.ErrSettingsLoadFailed, err)
	}
	if !ok {
		return s, nil
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %w", errors.ErrSettingsLoadFailed, err)
	}

	md, err := toml.Decode(string(raw), &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", errors.ErrSettingsLoadFailed, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf(
			"%w: %s: unknown keys: %s",
			errors.ErrSettingsLoadFailed,
			path,
			strings.Join(keys, ", "),
		)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", errors.ErrSettingsLoadFailed, path, err)
	}

	return s, nil
}

// Save writes s to path as TOML, creating the parent directory if required.
// An existing file is only replaced when force is true.
func Save(fs afero.Fs, path string, s Settings, force bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	ok, err := files.Exists(fs, path)
	if err != nil {
		return err
	}
	if ok && !force {
		return fmt.Errorf("settings file already exists: %s", path)
	}

	if err := files.EnsureDir(fs, filepath.Dir(path)); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), perms.RegularFile); err != nil {
		return fmt.Errorf("could not write settings file '%s': %w", path, err)
	}

	return nil
}
