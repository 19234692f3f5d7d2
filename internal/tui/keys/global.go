package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Command  key.Binding
	Filter   key.Binding
	Refresh  key.Binding
	Describe key.Binding
	Back     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Quit     key.Binding
	Exit     key.Binding
}

var Global = global{
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh"),
	),
	Describe: key.NewBinding(
		key.WithKeys("enter", "d"),
		key.WithHelp("enter/d", "describe"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "backspace"),
		key.WithHelp("b", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Exit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
}
