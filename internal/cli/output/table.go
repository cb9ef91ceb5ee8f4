package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders rows as a go-pretty table, as markdown in markdown mode.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(header)
	t.AppendRows(rows)

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
