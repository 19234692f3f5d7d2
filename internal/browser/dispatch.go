package browser

import (
	"github.com/google/uuid"

	"github.com/tonetui/tone/internal/errdef"
	"github.com/tonetui/tone/internal/resource"
)

// Outcome reports how Invoke disposed of an action request.
type Outcome int

const (
	// OutcomeInvoked means the optimistic transition is applied and the
	// returned Invocation must now be executed against the provider.
	OutcomeInvoked Outcome = iota
	// OutcomeAwaitingConfirmation means the action is destructive and
	// Invoke must be called again with confirmed set once the user agrees.
	OutcomeAwaitingConfirmation
	// OutcomeAlreadyPending means the item has an action in flight and the
	// request was refused.
	OutcomeAlreadyPending
)

// Invocation carries a validated action out to the provider call and back
// to Complete.
type Invocation struct {
	ViewID uuid.UUID
	Kind   resource.Kind
	ItemID string
	Action resource.Action
}

// Invoke runs the dispatch gates for an action on an item of v, in order:
// the read-only gate (in read-only mode no provider call is ever
// attempted), the kind's action table, the one-pending-action-per-item
// rule, and last the destructive-action confirmation. Once all gates pass
// the item optimistically shows the action's transition state and its
// snapshot is kept for rollback.
func (s *Session) Invoke(v *View, item resource.Item, action resource.Action, confirmed bool) (Invocation, Outcome, error) {
	if s.readonly {
		return Invocation{}, 0, errdef.New(errdef.CodeReadOnly, "Read-only mode: actions are disabled")
	}
	desc := resource.Describe(v.Kind)
	if !desc.Supports(action) {
		return Invocation{}, 0, errdef.New(errdef.CodeUnsupportedAction, "%s is not supported for %s", action, desc.Title)
	}
	if _, exists := v.pending[item.ID]; exists {
		return Invocation{}, OutcomeAlreadyPending, nil
	}
	if action.Destructive() && !confirmed {
		return Invocation{}, OutcomeAwaitingConfirmation, nil
	}
	v.pending[item.ID] = item
	v.replaceItem(item.WithState(action.PendingState()))
	return Invocation{ViewID: v.ID, Kind: v.Kind, ItemID: item.ID, Action: action}, OutcomeInvoked, nil
}

// Complete closes out an invocation with the provider's verdict. Success
// keeps the optimistic state for the next refresh to reconcile. Failure
// rolls the item's state back to its pre-call value and records the
// error; the item is never dropped from the view.
func (v *View) Complete(inv Invocation, err error) {
	snapshot, wasPending := v.pending[inv.ItemID]
	delete(v.pending, inv.ItemID)
	if err == nil {
		return
	}
	v.lastError = err
	if !wasPending {
		return
	}
	if current, ok := v.itemByID(inv.ItemID); ok {
		v.replaceItem(current.WithState(snapshot.State))
	}
}
