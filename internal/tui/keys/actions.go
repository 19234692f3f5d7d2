package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonetui/tone/internal/resource"
)

type actions struct {
	Resume    key.Binding
	Suspend   key.Binding
	Stop      key.Binding
	PowerOff  key.Binding
	Hold      key.Binding
	Release   key.Binding
	Terminate key.Binding
}

// Actions returns key bindings for virtual machine actions.
var Actions = actions{
	Resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	Suspend: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "suspend"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	PowerOff: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "power off"),
	),
	Hold: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "hold"),
	),
	Release: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "release"),
	),
	Terminate: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "terminate"),
	),
}

// ActionFor maps a key press to the action it triggers.
func ActionFor(msg tea.KeyMsg) (resource.Action, bool) {
	switch {
	case key.Matches(msg, Actions.Resume):
		return resource.Resume, true
	case key.Matches(msg, Actions.Suspend):
		return resource.Suspend, true
	case key.Matches(msg, Actions.Stop):
		return resource.Stop, true
	case key.Matches(msg, Actions.PowerOff):
		return resource.PowerOff, true
	case key.Matches(msg, Actions.Hold):
		return resource.Hold, true
	case key.Matches(msg, Actions.Release):
		return resource.Release, true
	case key.Matches(msg, Actions.Terminate):
		return resource.Terminate, true
	}
	return 0, false
}
