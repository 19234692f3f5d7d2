package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
	"github.com/tonetui/tone/internal/tui/keys"
)

var (
	helpHeadingStyle = tui.Bold
	helpKeyStyle     = tui.Regular.Foreground(tui.Yellow).Align(lipgloss.Right)
	helpDescStyle    = tui.Regular.Foreground(tui.LightGrey)
)

type helpGroup struct {
	title    string
	bindings []key.Binding
}

func (m model) helpView() string {
	content := fullHelpView(
		helpGroup{title: "ACTIONS", bindings: keys.KeyMapToSlice(keys.Actions)},
		helpGroup{title: "GENERAL", bindings: keys.KeyMapToSlice(keys.Global)},
		helpGroup{title: "NAVIGATION", bindings: keys.KeyMapToSlice(keys.Navigation)},
		helpGroup{title: "RESOURCES", bindings: resourceBindings()},
	)
	content = tui.Regular.
		Padding(0, 1).
		Height(m.overlayHeight()).
		Render(content)
	return boxWithTitle(" Help ", tui.Bold.Foreground(tui.Cyan), content, m.width, lipgloss.NoColor{})
}

// resourceBindings lists the ':' aliases as pseudo-bindings so the help
// overlay can catalogue them alongside real keys.
func resourceBindings() []key.Binding {
	kinds := resource.Kinds()
	bindings := make([]key.Binding, len(kinds))
	for i, kind := range kinds {
		bindings[i] = key.NewBinding(
			key.WithHelp(":"+kind.String(), resource.Describe(kind).Title),
		)
	}
	return bindings
}

// fullHelpView renders groups of bindings side by side: each group is a
// heading over a right-aligned column of keys and a column of
// descriptions.
func fullHelpView(groups ...helpGroup) string {
	rendered := make([]string, 0, len(groups)*2-1)
	for _, group := range groups {
		if len(rendered) > 0 {
			rendered = append(rendered, "    ")
		}

		groupKeys := make([]string, len(group.bindings))
		descriptions := make([]string, len(group.bindings))
		for i, binding := range group.bindings {
			groupKeys[i] = binding.Help().Key
			descriptions[i] = binding.Help().Desc
		}

		cols := lipgloss.JoinHorizontal(lipgloss.Top,
			helpKeyStyle.Render(strings.Join(groupKeys, "\n")),
			" ",
			helpDescStyle.Render(strings.Join(descriptions, "\n")),
		)
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left,
			helpHeadingStyle.Render(group.title),
			cols,
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Global.Help),
		key.Matches(msg, keys.Global.Escape),
		key.Matches(msg, keys.Global.Quit),
		msg.Type == tea.KeyEnter:
		m.mode = normalMode
	}
	return m, nil
}
