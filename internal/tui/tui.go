// Package tui contains the building blocks shared by the terminal
// interface: messages, colors, styles, and the widgets the top-level
// model composes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CmdHandler wraps a message in a bubbletea command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
