package top

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
	"github.com/tonetui/tone/internal/tui/keys"
)

// describeOverlay shows the full document behind the selected item,
// prettified. The document is fetched fresh every time the overlay
// opens; nothing is cached.
type describeOverlay struct {
	viewport tui.Viewport
	kind     resource.Kind
	id       string
	name     string
}

// openDescribe opens the overlay for the item and starts fetching its
// document.
func (m model) openDescribe(v *browser.View, item resource.Item) (tea.Model, tea.Cmd) {
	m.mode = describeMode
	m.describe = describeOverlay{
		viewport: tui.NewViewport(tui.ViewportOptions{
			Width:   m.overlayWidth(),
			Height:  m.overlayHeight(),
			JSON:    true,
			Spinner: m.spinner,
		}),
		kind: v.Kind,
		id:   item.ID,
		name: item.Name,
	}
	cmd := m.startFetch(m.fetchDetail(v.Kind, item.ID))
	return m, cmd
}

// matches reports whether a fetched document is the one the overlay is
// waiting for.
func (d describeOverlay) matches(kind resource.Kind, id string) bool {
	return d.kind == kind && d.id == id
}

func (d *describeOverlay) setDocument(doc []byte) error {
	return d.viewport.SetContent(doc)
}

func (d *describeOverlay) setDimensions(width, height int) {
	d.viewport.SetDimensions(width, height)
}

func (d describeOverlay) view(width int) string {
	title := fmt.Sprintf(" Describe: %s ", d.name)
	return boxWithTitle(title, tui.Bold.Foreground(tui.Cyan), d.viewport.View(), width, lipgloss.NoColor{})
}

func (m model) updateDescribe(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Global.Quit), key.Matches(msg, keys.Global.Escape), msg.String() == "d":
		m.mode = normalMode
		return m, nil
	}
	var cmd tea.Cmd
	m.describe.viewport, cmd = m.describe.viewport.Update(msg)
	return m, cmd
}
