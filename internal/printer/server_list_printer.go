package printer

import (
	"fmt"
	"io"

	"github.com/devboot-cli/devboot/internal/cmd/output"
)

var _ output.Printer[string] = (*ServerListPrinter)(nil)

// ServerListPrinter prints the MCP servers registered in the Claude Desktop config, one per line.
type ServerListPrinter struct {
	headerFunc output.WriteFunc[string]
	footerFunc output.WriteFunc[string]
}

func (p *ServerListPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
		return
	}
	_, _ = fmt.Fprintf(w, "MCP servers (%d):\n", count)
}

func (p *ServerListPrinter) SetHeader(fn output.WriteFunc[string]) {
	p.headerFunc = fn
}

func (p *ServerListPrinter) Item(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "  %s\n", name)
	return err
}

func (p *ServerListPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ServerListPrinter) SetFooter(fn output.WriteFunc[string]) {
	p.footerFunc = fn
}

func (p *ServerListPrinter) Empty(w io.Writer) {
	_, _ = io.WriteString(w, "No MCP servers registered\n")
}
