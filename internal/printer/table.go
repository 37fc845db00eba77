// Package printer renders devboot results as text for the terminal.
package printer

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is an interactive terminal, in which case colors may be used.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// tableRenderer accumulates rows between Header and Footer and renders them once.
type tableRenderer struct {
	color bool
	tw    table.Writer
}

func (r *tableRenderer) start(w io.Writer, header table.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(header)
	r.tw = tw
}

func (r *tableRenderer) append(row table.Row) {
	r.tw.AppendRow(row)
}

func (r *tableRenderer) render() {
	if r.tw == nil {
		return
	}
	r.tw.Render()
	r.tw = nil
}

func (r *tableRenderer) paint(s string, ok bool) string {
	if !r.color {
		return s
	}
	if ok {
		return text.FgGreen.Sprint(s)
	}

	return text.FgRed.Sprint(s)
}
