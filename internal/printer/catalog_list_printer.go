package printer

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/devboot-cli/devboot/internal/catalog"
	"github.com/devboot-cli/devboot/internal/cmd/output"
)

var _ output.Printer[CatalogEntry] = (*CatalogListPrinter)(nil)

// CatalogEntry is a catalog item annotated with its presence on this machine.
// For runtimes Present means found on the search path, for MCP servers it means registered with Claude Desktop.
type CatalogEntry struct {
	Kind        catalog.Kind `json:"kind"        yaml:"kind"`
	Name        string       `json:"name"        yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Present     bool         `json:"present"     yaml:"present"`
}

type CatalogListPrinter struct {
	labels     Labels
	table      tableRenderer
	headerFunc output.WriteFunc[CatalogEntry]
	footerFunc output.WriteFunc[CatalogEntry]
}

func NewCatalogListPrinter(l Labels, color bool) *CatalogListPrinter {
	return &CatalogListPrinter{
		labels: l,
		table:  tableRenderer{color: color},
	}
}

func (p *CatalogListPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
	p.table.start(w, table.Row{p.labels.Kind, p.labels.Name, p.labels.Description, p.labels.Status})
}

func (p *CatalogListPrinter) SetHeader(fn output.WriteFunc[CatalogEntry]) {
	p.headerFunc = fn
}

func (p *CatalogListPrinter) Item(_ io.Writer, e CatalogEntry) error {
	p.table.append(table.Row{e.Kind, e.Name, e.Description, p.table.paint(p.status(e), e.Present)})
	return nil
}

func (p *CatalogListPrinter) status(e CatalogEntry) string {
	switch {
	case e.Kind == catalog.KindServer && e.Present:
		return p.labels.Registered
	case e.Kind == catalog.KindServer:
		return p.labels.Unregistered
	case e.Present:
		return p.labels.Installed
	default:
		return p.labels.NotInstalled
	}
}

func (p *CatalogListPrinter) Footer(w io.Writer, count int) {
	p.table.render()
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *CatalogListPrinter) SetFooter(fn output.WriteFunc[CatalogEntry]) {
	p.footerFunc = fn
}
