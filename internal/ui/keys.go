package ui

import tea "github.com/charmbracelet/bubbletea"

// keyAction is a semantic key binding, decoupled from the physical keys.
type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyUp
	keyDown
	keyEnter
	keyEsc
	keyHelp
	keyPause
	keyVariantPicker
	keyNextField
	keyIntervalUp
	keyIntervalDown
)

// matchKey maps a key press to its action.
func matchKey(msg tea.KeyMsg) keyAction {
	switch msg.String() {
	case "q", "ctrl+c":
		return keyQuit
	case "up", "k":
		return keyUp
	case "down", "j":
		return keyDown
	case "enter":
		return keyEnter
	case "esc":
		return keyEsc
	case "?":
		return keyHelp
	case " ":
		return keyPause
	case "v":
		return keyVariantPicker
	case "f", "tab":
		return keyNextField
	case "+", "=":
		return keyIntervalUp
	case "-", "_":
		return keyIntervalDown
	}
	return keyNone
}
