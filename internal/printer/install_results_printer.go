package printer

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/devboot-cli/devboot/internal/cmd/output"
	"github.com/devboot-cli/devboot/internal/installer"
)

var _ output.Printer[installer.Entry] = (*InstallResultsPrinter)(nil)

// InstallResultsPrinter renders the install summary: one row per item with a success or failure label.
type InstallResultsPrinter struct {
	labels     Labels
	table      tableRenderer
	headerFunc output.WriteFunc[installer.Entry]
	footerFunc output.WriteFunc[installer.Entry]
}

// NewInstallResultsPrinter returns a printer using the given labels, coloring them when color is true.
func NewInstallResultsPrinter(l Labels, color bool) *InstallResultsPrinter {
	return &InstallResultsPrinter{
		labels: l,
		table:  tableRenderer{color: color},
	}
}

func (p *InstallResultsPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
	p.table.start(w, table.Row{p.labels.Item, p.labels.Result})
}

func (p *InstallResultsPrinter) SetHeader(fn output.WriteFunc[installer.Entry]) {
	p.headerFunc = fn
}

func (p *InstallResultsPrinter) Item(_ io.Writer, e installer.Entry) error {
	label := p.labels.Failed
	if e.OK {
		label = p.labels.Success
	}
	p.table.append(table.Row{e.Name, p.table.paint(label, e.OK)})

	return nil
}

func (p *InstallResultsPrinter) Footer(w io.Writer, count int) {
	p.table.render()
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *InstallResultsPrinter) SetFooter(fn output.WriteFunc[installer.Entry]) {
	p.footerFunc = fn
}

func (p *InstallResultsPrinter) Empty(w io.Writer) {
	_, _ = io.WriteString(w, "Nothing to install\n")
}
