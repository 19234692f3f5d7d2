package top

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
)

// confirmState holds the invocation a destructive action is waiting on.
// The item is snapshotted at the moment the key was pressed so a
// background refresh cannot swap the target under the dialog.
type confirmState struct {
	item   resource.Item
	action resource.Action
}

// updateConfirm resolves the dialog: 'y' proceeds, any other key
// cancels.
func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = normalMode
	if !key.Matches(msg, localKeys.Yes) {
		return m, tui.ReportInfo("chosen not to proceed with %s", m.confirm.action)
	}

	v := m.session.Current()
	inv, outcome, err := m.session.Invoke(v, m.confirm.item, m.confirm.action, true)
	if err != nil {
		m.err = err
		return m, nil
	}
	if outcome != browser.OutcomeInvoked {
		return m, nil
	}
	m.logger.Info("invoking action", "action", m.confirm.action, "kind", v.Kind, "id", m.confirm.item.ID)
	return m, m.submitAction(inv)
}

func (m model) confirmView() string {
	question := fmt.Sprintf("%s %s (ID %s)?", m.confirm.action, m.confirm.item.Name, m.confirm.item.ID)
	hint := tui.Regular.Foreground(tui.DarkGrey).Render("y: confirm | any other key: cancel")

	width := min(52, max(0, m.width-4))
	dialog := boxWithTitle(
		" Destructive Action ",
		tui.Bold.Foreground(tui.Red),
		question+"\n\n"+hint,
		width,
		tui.Red,
	)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, dialog)
}
