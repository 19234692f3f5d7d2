package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/tui"
	"github.com/tonetui/tone/internal/tui/keys"
)

// maxSuggestions caps how many completions the command box lists.
const maxSuggestions = 10

// commandBar is the ':' prompt: a text input plus a ranked list of
// completions, one of which is highlighted.
type commandBar struct {
	input       textinput.Model
	suggestions []string
	selected    int
}

func (c *commandBar) open() tea.Cmd {
	c.input = textinput.New()
	c.input.Prompt = ":"
	c.suggestions = browser.Suggest("")
	c.selected = 0
	return c.input.Focus()
}

// preview is the currently highlighted completion.
func (c commandBar) preview() string {
	if len(c.suggestions) == 0 {
		return ""
	}
	return c.suggestions[c.selected]
}

// effective resolves what Enter submits: the highlighted completion
// when the typed text is empty or matches it, otherwise the text
// exactly as typed.
func (c commandBar) effective() string {
	text := strings.TrimSpace(c.input.Value())
	preview := c.preview()
	switch {
	case text == "":
		return preview
	case preview != "" && strings.Contains(preview, text):
		return preview
	default:
		return text
	}
}

func (c *commandBar) next() {
	if n := len(c.suggestions); n > 0 {
		c.selected = (c.selected + 1) % n
	}
}

func (c *commandBar) prev() {
	if n := len(c.suggestions); n > 0 {
		c.selected = (c.selected - 1 + n) % n
	}
}

// refresh re-ranks completions against the typed text, moving the
// highlight back to the best match.
func (c *commandBar) refresh() {
	c.suggestions = browser.Suggest(c.input.Value())
	c.selected = 0
}

// height is how many terminal lines the bar occupies, suggestions
// included.
func (c commandBar) height() int {
	h := 3
	if n := len(c.suggestions); n > 0 {
		h += min(n, maxSuggestions) + 2
	}
	return h
}

func (c commandBar) view(width int) string {
	box := boxWithTitle(" Command ", tui.Bold.Foreground(tui.Cyan), c.input.View(), width, lipgloss.NoColor{})
	if len(c.suggestions) == 0 {
		return box
	}

	shown := c.suggestions
	if len(shown) > maxSuggestions {
		shown = shown[:maxSuggestions]
	}
	lines := make([]string, len(shown))
	for i, s := range shown {
		if i == c.selected {
			lines[i] = tui.Regular.Foreground(tui.Black).Background(tui.Cyan).Render(" " + s + " ")
		} else {
			lines[i] = " " + s
		}
	}
	suggestions := tui.Regular.
		Border(lipgloss.NormalBorder()).
		Render(tui.Regular.Width(max(0, width-2)).MaxWidth(max(0, width-2)).Render(strings.Join(lines, "\n")))

	return lipgloss.JoinVertical(lipgloss.Left, box, suggestions)
}

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Global.Escape):
		m.mode = normalMode
		m.layout()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.mode = normalMode
		m.layout()
		return m.runCommand(m.command.effective())
	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.command.next()
		return m, nil
	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.command.prev()
		return m, nil
	case msg.Type == tea.KeyRight:
		if preview := m.command.preview(); preview != "" {
			m.command.input.SetValue(preview)
			m.command.input.CursorEnd()
			m.command.refresh()
			m.layout()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.command.input, cmd = m.command.input.Update(msg)
	m.command.refresh()
	// The suggestion list shrinks and grows with the typed text, and
	// the table gives up the space.
	m.layout()
	return m, cmd
}

// runCommand acts on a submitted ':' buffer.
func (m model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := browser.Interpret(input)
	if err != nil {
		m.err = err
		return m, nil
	}
	switch cmd.Op {
	case browser.OpQuit:
		return m, tea.Quit
	case browser.OpHelp:
		m.mode = helpMode
	case browser.OpBack:
		return m.popView()
	case browser.OpLogs:
		return m.openLogs()
	case browser.OpSwitch:
		v := m.session.Push(cmd.Kind)
		m.layout()
		refresh := m.refreshView(v)
		return m, refresh
	}
	return m, nil
}
