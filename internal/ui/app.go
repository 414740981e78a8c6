package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/denham/simtop/internal/model"
	"github.com/denham/simtop/internal/sample"
)

// SnapshotMsg delivers a new snapshot to the UI.
type SnapshotMsg model.Snapshot

// Controller is implemented by the collector to allow runtime changes.
type Controller interface {
	SetInterval(d time.Duration)
	SetVariant(name string) error
}

// Preset refresh interval steps (sorted fastest→slowest)
var intervalPresets = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

const chartHeight = 8

// Model is the root bubbletea model for simtop.
type Model struct {
	width  int
	height int

	snapshot model.Snapshot
	haveData bool

	table  table.Model
	sparks map[string]*ringBuffer
	emas   map[string]*sample.EMA

	chartFieldIdx int

	// Help overlay
	showHelp bool

	// Data set picker overlay
	picker variantOverlay

	// Pause
	paused bool

	// Refresh interval
	intervalIdx int        // index into intervalPresets
	controller  Controller // callback for interval/variant changes

	// Snapshot channel (for tea.Cmd polling)
	snapCh <-chan model.Snapshot
}

// New creates a new UI model.
func New(snapCh <-chan model.Snapshot, interval time.Duration) Model {
	return Model{
		table:       newReadingsTable(),
		sparks:      make(map[string]*ringBuffer),
		emas:        make(map[string]*sample.EMA),
		snapCh:      snapCh,
		intervalIdx: nearestPreset(interval),
	}
}

// SetController sets the collector reference for runtime changes.
func (m *Model) SetController(c Controller) {
	m.controller = c
}

func nearestPreset(d time.Duration) int {
	best := 0
	for i, p := range intervalPresets {
		if absDuration(p-d) < absDuration(intervalPresets[best]-d) {
			best = i
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// WaitForSnapshot returns a tea.Cmd that waits for the next snapshot.
// Returns tea.Quit if the channel is closed (collector stopped).
func WaitForSnapshot(ch <-chan model.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return SnapshotMsg(snap)
	}
}

func (m Model) Init() tea.Cmd {
	return WaitForSnapshot(m.snapCh)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotMsg:
		if !m.paused {
			m.apply(model.Snapshot(msg))
		}
		return m, WaitForSnapshot(m.snapCh)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// apply folds a snapshot into the display state.
func (m *Model) apply(snap model.Snapshot) {
	if snap.Variant != m.snapshot.Variant {
		// Fresh variant: drop the cosmetic trails along with the history.
		m.sparks = make(map[string]*ringBuffer)
		m.emas = make(map[string]*sample.EMA)
		m.chartFieldIdx = 0
	}

	m.snapshot = snap
	m.haveData = true

	for _, f := range snap.Fields {
		v, ok := snap.Latest.Value(f.Name)
		if !ok {
			continue
		}
		if m.sparks[f.Name] == nil {
			m.sparks[f.Name] = newRingBuffer(sparklineLen)
		}
		if m.emas[f.Name] == nil {
			m.emas[f.Name] = sample.NewEMA(0.4)
		}
		m.sparks[f.Name].push(v)
		m.emas[f.Name].Update(v)
	}

	syncReadingsTable(&m.table, snap)
}

// chartField returns the field currently charted.
func (m Model) chartField() sample.FieldSpec {
	fields := m.snapshot.Fields
	if len(fields) == 0 {
		return sample.FieldSpec{}
	}
	return fields[m.chartFieldIdx%len(fields)]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Data set picker — intercept all keys when active
	if m.picker.active {
		switch matchKey(msg) {
		case keyUp:
			m.picker.moveUp()
		case keyDown:
			m.picker.moveDown()
		case keyEnter:
			if m.controller != nil {
				if err := m.controller.SetVariant(m.picker.selected().Name); err != nil {
					m.picker.result = err.Error()
					return m, nil
				}
			}
			m.paused = false
			m.picker.close()
		case keyEsc:
			m.picker.close()
		case keyQuit:
			return m, tea.Quit
		}
		return m, nil
	}

	// Help overlay — ? toggles, any key closes
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch matchKey(msg) {
	case keyQuit:
		return m, tea.Quit
	case keyHelp:
		m.showHelp = true
	case keyPause:
		m.paused = !m.paused
	case keyVariantPicker:
		m.picker.open(m.snapshot.Variant)
	case keyNextField:
		if n := len(m.snapshot.Fields); n > 0 {
			m.chartFieldIdx = (m.chartFieldIdx + 1) % n
		}
	case keyIntervalUp:
		m.changeInterval(-1) // faster = lower index
	case keyIntervalDown:
		m.changeInterval(1) // slower = higher index
	}

	return m, nil
}

func (m *Model) changeInterval(delta int) {
	newIdx := m.intervalIdx + delta
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(intervalPresets) {
		newIdx = len(intervalPresets) - 1
	}
	if newIdx == m.intervalIdx {
		return
	}
	m.intervalIdx = newIdx
	if m.controller != nil {
		m.controller.SetInterval(intervalPresets[m.intervalIdx])
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if !m.haveData {
		return "Waiting for first reading..."
	}

	header := renderHeader(m.snapshot, m.width, m.paused)
	boxes := renderValueBoxes(m.snapshot, m.sparks, m.emas)

	tablePanel := stylePanel.Render(
		stylePanelTitle.Render("recent readings") + "\n" + m.table.View(),
	)
	chartPanel := stylePanel.Render(
		scatterChart(m.snapshot.Readings, m.snapshot.Trends[m.chartField().Name],
			m.chartField(), m.width-4, chartHeight),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, boxes, tablePanel, chartPanel)

	footer := m.renderFooter()

	// Pad content so the footer stays at the bottom.
	used := lipgloss.Height(header) + lipgloss.Height(content) + 1
	if pad := m.height - used; pad > 0 {
		content += strings.Repeat("\n", pad)
	}

	result := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	// Overlays on top of everything
	if m.picker.active {
		result = m.picker.render(m.width, m.height)
	} else if m.showHelp {
		result = renderHelp(m.width, m.height)
	}

	return result
}

func (m Model) renderFooter() string {
	parts := []string{
		styleFooterKey.Render("?") + styleFooter.Render(" help"),
		styleFooterKey.Render("v") + styleFooter.Render(" data set"),
		styleFooterKey.Render("f") + styleFooter.Render(" chart: ") +
			styleHeaderValue.Render(m.chartField().Name),
		styleFooterKey.Render("space") + styleFooter.Render(" pause"),
		styleFooterKey.Render("+/-") + styleFooter.Render(" ") +
			styleHeaderValue.Render(formatInterval(intervalPresets[m.intervalIdx])),
		styleFooterKey.Render("q") + styleFooter.Render(" quit"),
	}

	if m.paused {
		parts = append(parts, stylePaused.Render("PAUSED"))
	}

	return "  " + strings.Join(parts, "  ")
}
