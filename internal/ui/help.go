package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"space", "pause / resume updates"},
	{"v", "switch data set"},
	{"f / tab", "cycle chart field"},
	{"+ / -", "faster / slower refresh"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

func renderHelp(width, height int) string {
	title := styleOverlayTitle.Render("  simtop — keys")

	var lines []string
	for _, e := range helpEntries {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			"   ",
			styleFooterKey.Render(fmt.Sprintf("%-8s", e.key)),
			"  ",
			styleListItem.Render(e.desc),
		))
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + "\n\n" +
		styleOverlayHint.Render("  press any key to close")

	box := styleOverlayBorder.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
