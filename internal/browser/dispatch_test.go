package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/errdef"
	"github.com/tonetui/tone/internal/resource"
)

// dispatchSession returns a read-write session whose root Vms view holds
// testItems, along with that view and its first item.
func dispatchSession(t *testing.T) (*Session, *View, resource.Item) {
	t.Helper()

	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)
	v := s.Current()
	require.True(t, v.ApplyList(v.BeginRefresh(), testItems(), nil))
	item, ok := v.SelectedItem()
	require.True(t, ok)
	return s, v, item
}

func TestInvoke_readonlyRefusesEverything(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", true)
	v := s.Current()
	require.True(t, v.ApplyList(v.BeginRefresh(), testItems(), nil))
	item := v.Items()[0]

	actions := []resource.Action{
		resource.Resume, resource.Suspend, resource.Stop, resource.PowerOff,
		resource.Hold, resource.Release, resource.Terminate,
	}
	for _, action := range actions {
		for _, confirmed := range []bool{false, true} {
			_, _, err := s.Invoke(v, item, action, confirmed)
			require.Error(t, err)
			assert.True(t, errdef.Is(err, errdef.CodeReadOnly))
			assert.Equal(t, "Read-only mode: actions are disabled", errdef.UserMessage(err))
		}
	}

	// nothing was transitioned or recorded
	assert.Equal(t, "RUNNING", v.Items()[0].State)
	assert.False(t, v.ActionPending(item.ID))
}

func TestInvoke_unsupportedKind(t *testing.T) {
	s := NewSession("http://localhost:2633/RPC2", "oneadmin", false)
	v := s.Push(resource.Hosts)
	host := resource.Item{ID: "0", Name: "kvm-01", State: "MONITORED"}
	require.True(t, v.ApplyList(v.BeginRefresh(), []resource.Item{host}, nil))

	_, _, err := s.Invoke(v, host, resource.Resume, false)

	require.Error(t, err)
	assert.True(t, errdef.Is(err, errdef.CodeUnsupportedAction))
	assert.Equal(t, "Resume is not supported for Hosts", errdef.UserMessage(err))
	assert.Equal(t, "MONITORED", v.Items()[0].State)
}

func TestInvoke_destructiveNeedsConfirmation(t *testing.T) {
	s, v, item := dispatchSession(t)

	// first pass: the gate holds the action for confirmation
	_, outcome, err := s.Invoke(v, item, resource.Terminate, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAwaitingConfirmation, outcome)
	assert.Equal(t, "RUNNING", v.Items()[0].State)
	assert.False(t, v.ActionPending(item.ID))

	// second pass, confirmed: the transition goes through
	inv, outcome, err := s.Invoke(v, item, resource.Terminate, true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInvoked, outcome)
	assert.Equal(t, v.ID, inv.ViewID)
	assert.Equal(t, resource.Vms, inv.Kind)
	assert.Equal(t, item.ID, inv.ItemID)
	assert.Equal(t, resource.Terminate, inv.Action)
	assert.Equal(t, "TERMINATING", v.Items()[0].State)
	assert.True(t, v.ActionPending(item.ID))
}

func TestInvoke_nonDestructiveRunsImmediately(t *testing.T) {
	s, v, item := dispatchSession(t)

	inv, outcome, err := s.Invoke(v, item, resource.Suspend, false)

	require.NoError(t, err)
	assert.Equal(t, OutcomeInvoked, outcome)
	assert.Equal(t, resource.Suspend, inv.Action)
	assert.Equal(t, "SUSPENDING", v.Items()[0].State)
}

func TestInvoke_refusesSecondActionOnSameItem(t *testing.T) {
	s, v, item := dispatchSession(t)

	_, outcome, err := s.Invoke(v, item, resource.Resume, false)
	require.NoError(t, err)
	require.Equal(t, OutcomeInvoked, outcome)

	_, outcome, err = s.Invoke(v, item, resource.Suspend, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyPending, outcome)
	assert.Equal(t, "RESUMING", v.Items()[0].State)

	// other items are unaffected by the pending rule
	other := v.Items()[1]
	_, outcome, err = s.Invoke(v, other, resource.Resume, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInvoked, outcome)
}

func TestComplete_successKeepsOptimisticState(t *testing.T) {
	s, v, item := dispatchSession(t)
	inv, _, err := s.Invoke(v, item, resource.Resume, false)
	require.NoError(t, err)

	v.Complete(inv, nil)

	// the optimistic marker stays until a refresh reconciles it
	assert.Equal(t, "RESUMING", v.Items()[0].State)
	assert.False(t, v.ActionPending(item.ID))
	assert.NoError(t, v.LastError())

	// and the item accepts actions again
	_, outcome, err := s.Invoke(v, v.Items()[0], resource.Suspend, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInvoked, outcome)
}

func TestComplete_failureRollsBack(t *testing.T) {
	s, v, item := dispatchSession(t)
	require.Equal(t, "RUNNING", item.State)

	inv, _, err := s.Invoke(v, item, resource.Terminate, true)
	require.NoError(t, err)
	require.Equal(t, "TERMINATING", v.Items()[0].State)

	callErr := errors.New("VM is locked")
	v.Complete(inv, callErr)

	// rolled back, never removed
	require.Len(t, v.Items(), 4)
	assert.Equal(t, "RUNNING", v.Items()[0].State)
	assert.False(t, v.ActionPending(item.ID))
	assert.Equal(t, callErr, v.LastError())
}

func TestComplete_failureAfterItemVanished(t *testing.T) {
	s, v, item := dispatchSession(t)
	inv, _, err := s.Invoke(v, item, resource.Terminate, true)
	require.NoError(t, err)

	// a refresh lands while the call is in flight and drops the item
	shrunk := []resource.Item{{ID: "4", Name: "cache", State: "SUSPENDED"}}
	require.True(t, v.ApplyList(v.BeginRefresh(), shrunk, nil))

	v.Complete(inv, errors.New("no such vm"))

	// nothing to roll back; the error still reaches the user
	require.Len(t, v.Items(), 1)
	assert.Equal(t, "4", v.Items()[0].ID)
	assert.Error(t, v.LastError())
	assert.False(t, v.ActionPending(item.ID))
}
