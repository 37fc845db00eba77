package printer

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/devboot-cli/devboot/internal/cmd/output"
	"github.com/devboot-cli/devboot/internal/settings"
)

var _ output.Printer[SettingsResult] = (*SettingsPrinter)(nil)

// SettingsResult is the effective settings and the file they were loaded from.
type SettingsResult struct {
	Path     string            `json:"path"     yaml:"path"`
	Found    bool              `json:"found"    yaml:"found"`
	Settings settings.Settings `json:"settings" yaml:"settings"`
}

// SettingsPrinter prints the effective settings as TOML, in the same shape as the settings file.
type SettingsPrinter struct {
	headerFunc output.WriteFunc[SettingsResult]
	footerFunc output.WriteFunc[SettingsResult]
}

func (p *SettingsPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *SettingsPrinter) SetHeader(fn output.WriteFunc[SettingsResult]) {
	p.headerFunc = fn
}

func (p *SettingsPrinter) Item(w io.Writer, r SettingsResult) error {
	if r.Found {
		_, _ = fmt.Fprintf(w, "# %s\n", r.Path)
	} else {
		_, _ = fmt.Fprintf(w, "# %s (not found, showing defaults)\n", r.Path)
	}

	if err := toml.NewEncoder(w).Encode(r.Settings); err != nil {
		return fmt.Errorf("could not render settings: %w", err)
	}

	return nil
}

func (p *SettingsPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *SettingsPrinter) SetFooter(fn output.WriteFunc[SettingsResult]) {
	p.footerFunc = fn
}
