package top

import "github.com/charmbracelet/bubbles/key"

// localKeys are key bindings handled by the top-level model alone.
var localKeys = struct {
	Yes key.Binding
}{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
}
