package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/denham/simtop/internal/model"
	"github.com/denham/simtop/internal/sample"
)

// renderHeader renders the title bar.
func renderHeader(snap model.Snapshot, width int, paused bool) string {
	left := " " + styleTitle.Render("simtop") +
		styleHeaderLabel.Render(" — ") +
		styleHeaderValue.Render(snap.Title)

	right := styleHeaderLabel.Render("every ") +
		styleHeaderValue.Render(formatInterval(snap.Interval)) +
		styleHeaderLabel.Render(fmt.Sprintf("  tick %d ", snap.Ticks))
	if paused {
		right = stylePaused.Render("PAUSED") + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderValueBoxes renders one panel per field (latest value, trend arrow,
// EMA-smoothed value, sparkline) plus the current date/time panel.
func renderValueBoxes(snap model.Snapshot, sparks map[string]*ringBuffer,
	emas map[string]*sample.EMA) string {

	boxes := make([]string, 0, len(snap.Fields)+1)
	for _, f := range snap.Fields {
		boxes = append(boxes, renderFieldBox(snap, f, sparks[f.Name], emas[f.Name]))
	}
	boxes = append(boxes, renderTimeBox(snap))
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderFieldBox(snap model.Snapshot, f sample.FieldSpec, spark *ringBuffer, ema *sample.EMA) string {
	v, _ := snap.Latest.Value(f.Name)

	arrow := styleTrendFlat.Render("→")
	if line, ok := snap.Trends[f.Name]; ok {
		switch {
		case line.Slope > 0:
			arrow = styleTrendUp.Render("▲")
		case line.Slope < 0:
			arrow = styleTrendDown.Render("▼")
		}
	}

	lines := []string{
		stylePanelTitle.Render(f.Name),
		styleValueBig.Render(formatValue(v, f)) + " " + styleUnit.Render(f.Unit) + "  " + arrow,
	}
	if ema != nil {
		lines = append(lines, styleHeaderLabel.Render("ema ")+
			styleHeaderValue.Render(formatValue(ema.Value(), f)))
	}
	if spark != nil {
		lines = append(lines, styleSpark.Render(renderSparkline(spark.samples(), f.Min, f.Max)))
	}

	return stylePanel.Render(strings.Join(lines, "\n"))
}

func renderTimeBox(snap model.Snapshot) string {
	lines := []string{
		stylePanelTitle.Render("current time"),
		styleHeaderValue.Render(snap.Latest.Timestamp()),
		styleHeaderLabel.Render(fmt.Sprintf("window %d/%d", len(snap.Readings), snap.Capacity)),
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}

func formatInterval(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	s := float64(ms) / 1000.0
	if s == float64(int(s)) {
		return fmt.Sprintf("%ds", int(s))
	}
	return fmt.Sprintf("%.1fs", s)
}
