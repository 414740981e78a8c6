package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorBg        = lipgloss.Color("#282A36")
	colorFg        = lipgloss.Color("#F8F8F2")
	colorFgDim     = lipgloss.Color("#6272A4")
	colorCyan      = lipgloss.Color("#8BE9FD")
	colorGreen     = lipgloss.Color("#50FA7B")
	colorYellow    = lipgloss.Color("#F1FA8C")
	colorRed       = lipgloss.Color("#FF5555")
	colorMagenta   = lipgloss.Color("#FF79C6")
	colorOrange    = lipgloss.Color("#FFB86C")
	colorSelection = lipgloss.Color("#44475A")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	styleHeaderLabel = lipgloss.NewStyle().
				Foreground(colorFgDim)

	styleHeaderValue = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFgDim).
			Padding(0, 1)

	stylePanelTitle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	styleValueBig = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	styleUnit = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleTrendUp = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleTrendDown = lipgloss.NewStyle().
			Foreground(colorRed)

	styleTrendFlat = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleSpark = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleChartPoint = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	styleChartTrend = lipgloss.NewStyle().
			Foreground(colorOrange)

	styleChartAxis = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	stylePaused = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorYellow).
			Bold(true).
			Padding(0, 1)

	styleOverlayBorder = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Background(colorBg).
				Padding(1, 2)

	styleOverlayTitle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	styleOverlayHint = lipgloss.NewStyle().
				Foreground(colorFgDim)

	styleListItem = lipgloss.NewStyle().
			Foreground(colorFg)

	styleListSelected = lipgloss.NewStyle().
				Background(colorSelection).
				Foreground(colorFg).
				Bold(true)
)

// trendStyle picks a style for a slope indicator.
func trendStyle(slope float64) lipgloss.Style {
	switch {
	case slope > 0:
		return styleTrendUp
	case slope < 0:
		return styleTrendDown
	default:
		return styleTrendFlat
	}
}
