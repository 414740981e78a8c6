package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/denham/simtop/internal/sample"
)

// variantOverlay manages the data-set picker state.
type variantOverlay struct {
	active bool
	cursor int
	result string // status message after a failed switch
}

func (o *variantOverlay) open(current string) {
	o.active = true
	o.result = ""
	o.cursor = 0
	for i, v := range sample.Variants {
		if v.Name == current {
			o.cursor = i
			break
		}
	}
}

func (o *variantOverlay) close() {
	o.active = false
	o.result = ""
}

func (o *variantOverlay) moveUp() {
	if o.cursor > 0 {
		o.cursor--
	}
}

func (o *variantOverlay) moveDown() {
	if o.cursor < len(sample.Variants)-1 {
		o.cursor++
	}
}

// selected returns the variant under the cursor.
func (o *variantOverlay) selected() sample.Variant {
	return sample.Variants[o.cursor]
}

func (o *variantOverlay) render(width, height int) string {
	title := styleOverlayTitle.Render("  Switch data set")

	var lines []string
	for i, v := range sample.Variants {
		fields := make([]string, len(v.Fields))
		for j, f := range v.Fields {
			fields[j] = f.Name
		}
		desc := strings.Join(fields, ", ")

		if i == o.cursor {
			lines = append(lines, styleListSelected.Render(
				fmt.Sprintf(" ▸ %-10s %s ", v.Name, desc),
			))
		} else {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				"   ",
				styleListItem.Render(fmt.Sprintf("%-10s", v.Name)),
				" ",
				styleOverlayHint.Render(desc),
			))
		}
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + "\n\n" +
		styleOverlayHint.Render("  j/k navigate  enter switch  esc cancel")
	if o.result != "" {
		content += "\n" + stylePaused.Render(o.result)
	}

	box := styleOverlayBorder.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
