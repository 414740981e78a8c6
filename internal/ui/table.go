package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/denham/simtop/internal/model"
	"github.com/denham/simtop/internal/sample"
)

const timeColWidth = 19 // "2026-08-30 12:04:01"

// newReadingsTable builds the bounded-history table. It is display-only;
// the history is small enough that nothing needs selecting.
func newReadingsTable() table.Model {
	t := table.New()

	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		Foreground(colorMagenta).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorFgDim).
		BorderBottom(true)
	s.Cell = s.Cell.Foreground(colorFg)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// syncReadingsTable rebuilds columns and rows from a snapshot. Columns
// change only when the variant changes.
func syncReadingsTable(t *table.Model, snap model.Snapshot) {
	columns := make([]table.Column, 0, len(snap.Fields)+1)
	columns = append(columns, table.Column{Title: "timestamp", Width: timeColWidth})
	for _, f := range snap.Fields {
		w := len(f.Name)
		if w < 10 {
			w = 10
		}
		columns = append(columns, table.Column{Title: f.Name, Width: w})
	}

	rows := make([]table.Row, len(snap.Readings))
	for i, r := range snap.Readings {
		row := make(table.Row, 0, len(snap.Fields)+1)
		row = append(row, r.Timestamp())
		for _, f := range snap.Fields {
			v, _ := r.Value(f.Name)
			row = append(row, formatValue(v, f))
		}
		rows[i] = row
	}

	// SetRows before SetColumns would index stale widths; order matters.
	t.SetColumns(columns)
	t.SetRows(rows)
	t.SetHeight(len(rows) + 1)
}

// formatValue renders a field value at its configured precision.
func formatValue(v float64, f sample.FieldSpec) string {
	return fmt.Sprintf("%.*f", f.Precision, v)
}
