package top

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/logging"
	"github.com/tonetui/tone/internal/one"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
)

// fakeProvider serves canned pools and records the actions submitted to
// it.
type fakeProvider struct {
	mu        sync.Mutex
	items     map[resource.Kind][]resource.Item
	listErr   error
	detail    *one.Document
	detailErr error
	actionErr error
	actions   []string
}

func (f *fakeProvider) List(_ context.Context, kind resource.Kind) ([]resource.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	// The model replaces item states in place; hand out a copy per call,
	// as the real client does, so the canned pool stays pristine.
	return append([]resource.Item(nil), f.items[kind]...), nil
}

func (f *fakeProvider) Detail(_ context.Context, _ resource.Kind, _ string) (*one.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeProvider) InvokeAction(_ context.Context, kind resource.Kind, id string, action resource.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.actionErr != nil {
		return f.actionErr
	}
	f.actions = append(f.actions, fmt.Sprintf("%s/%s/%s", kind, id, action.RPCName()))
	return nil
}

func (f *fakeProvider) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.actions...)
}

func (f *fakeProvider) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func vmItem(id, name, state string) resource.Item {
	return resource.Item{
		ID:    id,
		Name:  name,
		State: state,
		Cells: map[string]string{
			"ID":                 id,
			"NAME":               name,
			resource.ColumnState: state,
			"HOST":               "host1",
			"CPU":                "1",
			"MEM":                "2.0 GB",
		},
	}
}

func hostItem(id, name, state string) resource.Item {
	return resource.Item{
		ID:    id,
		Name:  name,
		State: state,
		Cells: map[string]string{
			"ID":                 id,
			"NAME":               name,
			resource.ColumnState: state,
			"CLUSTER":            "default",
			"RVMS":               "0",
		},
	}
}

// threeVMs is the default pool most tests browse.
func threeVMs() map[resource.Kind][]resource.Item {
	return map[resource.Kind][]resource.Item{
		resource.Vms: {
			vmItem("0", "web-1", "RUNNING"),
			vmItem("1", "web-2", "RUNNING"),
			vmItem("2", "db-1", "POWEROFF"),
		},
		resource.Hosts: {
			hostItem("0", "node-1", "MONITORED"),
		},
	}
}

// newTestModel builds a model wired to the fake provider, sized to a
// typical terminal, with its initial pool loaded.
func newTestModel(t *testing.T, provider tui.Provider, readonly bool) model {
	t.Helper()

	logger, err := logging.NewLogger(logging.Options{Level: logging.DefaultLevel})
	require.NoError(t, err)

	s := spinner.New(spinner.WithSpinner(spinner.Line))
	m := model{
		session:  browser.NewSession("http://localhost:2633/RPC2", "oneadmin", readonly),
		provider: provider,
		logger:   logger,
		spinner:  &s,
		width:    100,
		height:   30,
	}
	m.layout()
	return feed(t, m, m.Init())
}

// feed runs commands and feeds the resulting messages back into the
// model until none remain, standing in for the program loop.
func feed(t *testing.T, m model, cmds ...tea.Cmd) model {
	t.Helper()
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case tea.BatchMsg:
			m = feed(t, m, msg...)
		case tea.QuitMsg:
			// The program loop would stop here.
		default:
			updated, next := m.Update(msg)
			m = updated.(model)
			m = feed(t, m, next)
		}
	}
	return m
}

// press delivers a single keypress without running the commands it
// returns.
func press(t *testing.T, m model, s string) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(s))
	return updated.(model), cmd
}

// typeString delivers a string one rune at a time, discarding cursor
// commands along the way.
func typeString(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, string(r))
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
