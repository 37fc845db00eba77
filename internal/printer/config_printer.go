package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/devboot-cli/devboot/internal/claude"
	"github.com/devboot-cli/devboot/internal/cmd/output"
)

var _ output.Printer[ConfigResult] = (*ConfigPrinter)(nil)

// ConfigResult is the Claude Desktop config at Path. Config is nil when the file doesn't exist.
type ConfigResult struct {
	Path   string           `json:"path"   yaml:"path"`
	Found  bool             `json:"found"  yaml:"found"`
	Config *claude.Document `json:"config" yaml:"config"`
}

// ConfigPrinter prints the config as indented JSON, or a not found notice.
type ConfigPrinter struct {
	headerFunc output.WriteFunc[ConfigResult]
	footerFunc output.WriteFunc[ConfigResult]
}

func (p *ConfigPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *ConfigPrinter) SetHeader(fn output.WriteFunc[ConfigResult]) {
	p.headerFunc = fn
}

func (p *ConfigPrinter) Item(w io.Writer, r ConfigResult) error {
	if r.Config == nil {
		_, err := fmt.Fprintf(w, "Claude config not found: %s\n", r.Path)
		return err
	}

	b, err := json.MarshalIndent(r.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("could not render Claude config: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func (p *ConfigPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ConfigPrinter) SetFooter(fn output.WriteFunc[ConfigResult]) {
	p.footerFunc = fn
}
