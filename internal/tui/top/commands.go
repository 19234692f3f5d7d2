package top

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/resource"
)

// chordTimeout is how long the model waits for the second key of a
// two-key chord before giving up on it.
const chordTimeout = 500 * time.Millisecond

// listResultMsg delivers the outcome of a pool fetch. The view id and
// generation decide whether the result still applies by the time it
// arrives.
type listResultMsg struct {
	viewID uuid.UUID
	gen    int
	items  []resource.Item
	err    error
}

// detailResultMsg delivers the raw JSON document for the describe
// overlay.
type detailResultMsg struct {
	kind resource.Kind
	id   string
	doc  []byte
	err  error
}

// actionResultMsg delivers the provider's verdict on a submitted
// action.
type actionResultMsg struct {
	inv browser.Invocation
	err error
}

// chordExpiredMsg fires once the window for the second key of a chord
// has passed. seq guards against a stale timer cancelling a chord
// started later.
type chordExpiredMsg struct {
	seq int
}

// autoRefreshMsg asks the current view to refresh itself in the
// background.
type autoRefreshMsg struct{}

// fetchList fetches the pool behind the view. BeginRefresh bumps the
// view's generation so that an earlier fetch still in flight cannot
// clobber this one.
func (m model) fetchList(v *browser.View) tea.Cmd {
	var (
		viewID = v.ID
		kind   = v.Kind
		gen    = v.BeginRefresh()
	)
	return func() tea.Msg {
		items, err := m.provider.List(context.Background(), kind)
		return listResultMsg{viewID: viewID, gen: gen, items: items, err: err}
	}
}

// fetchDetail fetches the full document for a single object and
// renders it to JSON for the describe overlay.
func (m model) fetchDetail(kind resource.Kind, id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.provider.Detail(context.Background(), kind, id)
		if err != nil {
			return detailResultMsg{kind: kind, id: id, err: err}
		}
		raw, err := json.Marshal(doc)
		return detailResultMsg{kind: kind, id: id, doc: raw, err: err}
	}
}

// submitAction asks the provider to perform a previously authorized
// invocation.
func (m model) submitAction(inv browser.Invocation) tea.Cmd {
	return func() tea.Msg {
		err := m.provider.InvokeAction(context.Background(), inv.Kind, inv.ItemID, inv.Action)
		return actionResultMsg{inv: inv, err: err}
	}
}

func expireChord(seq int) tea.Cmd {
	return tea.Tick(chordTimeout, func(time.Time) tea.Msg {
		return chordExpiredMsg{seq: seq}
	})
}
