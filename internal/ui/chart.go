package ui

import (
	"fmt"
	"strings"

	"github.com/denham/simtop/internal/sample"
)

// scatterChart renders the buffered readings of one field as a scatter plot
// with the least-squares trend line overlaid:
//
//	price (USD)  slope: +2.13/tick
//	 149.5│              ●
//	 137.1│        ·──·──●
//	 124.8│  ●──·──
//	 112.4│──●
//	 100.0│
//	      └────────────────────
//	      12:04:01      12:04:13
//
// Sample points render as ●, the fitted line as a dotted trace. The y-range
// follows the data with headroom so small fluctuations stay visible.
func scatterChart(readings []sample.Reading, line sample.TrendLine, field sample.FieldSpec,
	width, height int) string {

	values := make([]float64, 0, len(readings))
	for _, r := range readings {
		if v, ok := r.Value(field.Name); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 || height < 2 {
		return styleChartAxis.Render("collecting...")
	}

	minV, maxV := chartRange(values, line.Fitted)

	const axisW = 8 // e.g. " 149.5│"
	chartW := width - axisW - 1
	if chartW < 12 {
		chartW = 12
	}

	n := len(values)
	colFor := func(i int) int {
		if n == 1 {
			return 0
		}
		return i * (chartW - 1) / (n - 1)
	}
	rowFor := func(v float64) int {
		norm := (v - minV) / (maxV - minV)
		row := int(norm*float64(height-1) + 0.5)
		if row < 0 {
			row = 0
		}
		if row > height-1 {
			row = height - 1
		}
		return row
	}

	const (
		cellEmpty = iota
		cellTrend
		cellPoint
	)
	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = make([]byte, chartW)
	}

	// Trend line first, one cell per column, interpolated over buffer index.
	for col := 0; col < chartW; col++ {
		var x float64
		if n > 1 {
			x = float64(col) * float64(n-1) / float64(chartW-1)
		}
		grid[rowFor(line.Slope*x+line.Intercept)][col] = cellTrend
	}

	// Sample points override the trend trace.
	for i, v := range values {
		grid[rowFor(v)][colFor(i)] = cellPoint
	}

	var sb strings.Builder

	// Title line: field label plus slope readout.
	sb.WriteString(stylePanelTitle.Render(fmt.Sprintf("%s (%s)", field.Name, field.Unit)))
	sb.WriteString(trendStyle(line.Slope).Render(fmt.Sprintf("  slope: %+.2f/tick", line.Slope)))
	sb.WriteString("\n")

	for row := height - 1; row >= 0; row-- {
		yVal := minV + float64(row)/float64(height-1)*(maxV-minV)
		sb.WriteString(styleChartAxis.Render(fmt.Sprintf("%7.1f│", yVal)))
		for col := 0; col < chartW; col++ {
			switch grid[row][col] {
			case cellPoint:
				sb.WriteString(styleChartPoint.Render("●"))
			case cellTrend:
				sb.WriteString(styleChartTrend.Render("·"))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}

	// X axis with first/last timestamps.
	sb.WriteString(styleChartAxis.Render(strings.Repeat(" ", axisW-1) + "└" + strings.Repeat("─", chartW)))
	first := readings[0].At.Format("15:04:05")
	last := readings[len(readings)-1].At.Format("15:04:05")
	gap := chartW - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString("\n")
	sb.WriteString(styleChartAxis.Render(strings.Repeat(" ", axisW) + first + strings.Repeat(" ", gap) + last))

	return sb.String()
}

// chartRange picks a y-range covering the samples and the fitted line with
// 10% headroom, widening degenerate flat series so the plot stays readable.
func chartRange(values, fitted []float64) (minV, maxV float64) {
	minV, maxV = values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	for _, v := range fitted {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	pad := (maxV - minV) * 0.1
	if pad == 0 {
		pad = 1
	}
	return minV - pad, maxV + pad
}
