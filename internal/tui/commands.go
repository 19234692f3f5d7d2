package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ReportInfo sends a message to display in the footer.
func ReportInfo(msg string, args ...any) tea.Cmd {
	return CmdHandler(InfoMsg(fmt.Sprintf(msg, args...)))
}

// ReportError sends an error to display in the footer and log.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}
