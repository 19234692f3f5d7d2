package app_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/app"
)

func TestBrowseVms(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[2]") &&
			strings.Contains(s, "web-1") &&
			strings.Contains(s, "RUNNING") &&
			strings.Contains(s, "db-1") &&
			strings.Contains(s, "POWEROFF") &&
			strings.Contains(s, "oneadmin") &&
			strings.Contains(s, "READ-WRITE")
	})
}

func TestSwitchToHosts(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[2]")
	})

	// Switch to the hosts pool via the command bar.
	tm.Type(":")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Command")
	})
	tm.Type("one-hosts")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Hosts[1]") &&
			strings.Contains(s, "node-1") &&
			strings.Contains(s, "MONITORED") &&
			strings.Contains(s, "one-vms > one-hosts")
	})

	// Back returns to the pool we came from.
	tm.Type("b")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[2]")
	})
}

func TestFilterVms(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[2]")
	})

	tm.Type("/")
	tm.Type("web")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[1/2]")
	})
}

func TestDescribeVm(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	// Drill down into the first machine.
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Describe: web-1") &&
			strings.Contains(s, "alpine")
	})

	// Close the overlay.
	tm.Type("q")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Virtual Machines[2]")
	})
}

func TestSuspendVm(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	tm.Type("u")

	require.Eventually(t, func() bool {
		return f.called("one.vm.action")
	}, 5*time.Second, 100*time.Millisecond)
}

func TestTerminateConfirm(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Destructive Action") &&
			strings.Contains(s, "Terminate web-1 (ID 0)?")
	})

	tm.Type("y")

	require.Eventually(t, func() bool {
		return f.called("one.vm.action")
	}, 5*time.Second, 100*time.Millisecond)
}

func TestTerminateDeclined(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Destructive Action")
	})

	tm.Type("n")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "chosen not to proceed")
	})
	assert.False(t, f.called("one.vm.action"))
}

func TestReadonly(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f, func(cfg *app.Config) {
		cfg.Readonly = true
	})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "READ-ONLY") &&
			strings.Contains(s, "web-1")
	})

	tm.Type("u")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Read-only mode: actions are disabled")
	})
	assert.False(t, f.called("one.vm.action"))
}

func TestProviderError(t *testing.T) {
	f := newFakeFrontend()
	f.fail("one.vmpool.info", "boom")
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Error: OpenNebula API error: boom")
	})
}

func TestLogs(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	// The app logs the session parameters at startup; the logs overlay
	// should surface that record.
	tm.Type(":")
	tm.Type("logs")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Logs") &&
			strings.Contains(s, "starting session")
	})
}

func TestQuit(t *testing.T) {
	f := newFakeFrontend()
	tm := setup(t, f)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "web-1")
	})

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
