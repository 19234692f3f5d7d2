package top

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/logging"
	"github.com/tonetui/tone/internal/tui"
	"github.com/tonetui/tone/internal/tui/keys"
)

// logsOverlay renders the session's log records, autoscrolled so new
// records stay in view as they arrive.
type logsOverlay struct {
	viewport tui.Viewport
}

func (m model) openLogs() (tea.Model, tea.Cmd) {
	m.mode = logsMode
	m.logs = logsOverlay{
		viewport: tui.NewViewport(tui.ViewportOptions{
			Width:      m.overlayWidth(),
			Height:     m.overlayHeight(),
			Autoscroll: true,
		}),
	}
	m.logs.refresh(m.logger)
	return m, nil
}

// refresh re-renders the overlay from the logger's records, oldest
// first.
func (lo *logsOverlay) refresh(logger *logging.Logger) {
	msgs := logger.List()
	lines := make([]string, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		lines = append(lines, renderLogMessage(msgs[i]))
	}
	// The content is styled already; feeding it back through the
	// sanitizer on resize is harmless.
	_ = lo.viewport.SetContent([]byte(strings.Join(lines, "\n")))
}

func (lo *logsOverlay) setDimensions(width, height int) {
	lo.viewport.SetDimensions(width, height)
}

func (lo logsOverlay) view(width int) string {
	return boxWithTitle(" Logs ", tui.Bold.Foreground(tui.Cyan), lo.viewport.View(), width, lipgloss.NoColor{})
}

func renderLogMessage(msg logging.Message) string {
	var levelColor lipgloss.TerminalColor = lipgloss.NoColor{}
	switch msg.Level {
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	}
	parts := []string{
		tui.Faint.Render(msg.Time.Format(time.TimeOnly)),
		tui.Bold.Foreground(levelColor).Render(msg.Level),
		msg.Message,
	}
	for _, attr := range msg.Attributes {
		parts = append(parts,
			tui.Regular.Foreground(tui.LogRecordAttributeKey).Render(attr.Key+"=")+attr.Value)
	}
	return strings.Join(parts, " ")
}

func (m model) updateLogs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Global.Quit), key.Matches(msg, keys.Global.Escape):
		m.mode = normalMode
		return m, nil
	}
	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}
