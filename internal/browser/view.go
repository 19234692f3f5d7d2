package browser

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tonetui/tone/internal/resource"
)

// View is one entry in the session's navigation stack: a resource kind
// together with the state the user built up on it. Items hold the latest
// snapshot delivered by a refresh; the filter only narrows what is shown,
// never what is cached.
type View struct {
	ID   uuid.UUID
	Kind resource.Kind

	items      []resource.Item
	selected   int
	scroll     int
	filterText string
	generation int
	lastError  error

	// pending maps an item id to the snapshot taken before its optimistic
	// transition, for rollback if the provider refuses the action.
	pending map[string]resource.Item
}

func newView(kind resource.Kind) *View {
	return &View{
		ID:      uuid.New(),
		Kind:    kind,
		pending: make(map[string]resource.Item),
	}
}

// Items returns the cached snapshot, ignoring any filter.
func (v *View) Items() []resource.Item { return v.items }

// Visible returns the items the filter lets through, in cache order. An
// item passes if its name, id or state contains the filter text,
// case-insensitively.
func (v *View) Visible() []resource.Item {
	if v.filterText == "" {
		return v.items
	}
	needle := strings.ToLower(v.filterText)
	var visible []resource.Item
	for _, item := range v.items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.ID), needle) ||
			strings.Contains(strings.ToLower(item.State), needle) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Selected returns the cursor position within Visible.
func (v *View) Selected() int { return v.selected }

// SelectedItem returns the item under the cursor, if there is one.
func (v *View) SelectedItem() (resource.Item, bool) {
	visible := v.Visible()
	if len(visible) == 0 || v.selected >= len(visible) {
		return resource.Item{}, false
	}
	return visible[v.selected], true
}

// MoveSelection moves the cursor by delta rows, clamped to the visible
// range.
func (v *View) MoveSelection(delta int) {
	v.selected += delta
	v.clampSelection()
}

// GoTop moves the cursor to the first visible row.
func (v *View) GoTop() { v.selected = 0 }

// GoBottom moves the cursor to the last visible row.
func (v *View) GoBottom() { v.selected = max(len(v.Visible())-1, 0) }

// PageDown moves the cursor down by one viewport of rows.
func (v *View) PageDown(page int) { v.MoveSelection(max(page, 1)) }

// PageUp moves the cursor up by one viewport of rows.
func (v *View) PageUp(page int) { v.MoveSelection(-max(page, 1)) }

func (v *View) clampSelection() {
	if n := len(v.Visible()); v.selected >= n {
		v.selected = n - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// Filter returns the active filter text.
func (v *View) Filter() string { return v.filterText }

// SetFilter narrows the visible projection to items matching text. The
// cached items are untouched, so clearing the filter restores the full
// list without a refetch.
func (v *View) SetFilter(text string) {
	v.filterText = text
	v.clampSelection()
}

// ScrollOffset returns the first visible row the renderer should draw.
func (v *View) ScrollOffset() int { return v.scroll }

// EnsureVisible adjusts the scroll offset so the cursor falls inside a
// viewport of the given height.
func (v *View) EnsureVisible(height int) {
	if height < 1 {
		height = 1
	}
	if v.selected < v.scroll {
		v.scroll = v.selected
	}
	if v.selected >= v.scroll+height {
		v.scroll = v.selected - height + 1
	}
	if maxScroll := max(len(v.Visible())-height, 0); v.scroll > maxScroll {
		v.scroll = maxScroll
	}
}

// LastError returns the most recent refresh or action failure, or nil
// once a refresh has succeeded.
func (v *View) LastError() error { return v.lastError }

// ActionPending reports whether the item has an action in flight.
func (v *View) ActionPending(id string) bool {
	_, ok := v.pending[id]
	return ok
}

func (v *View) itemByID(id string) (resource.Item, bool) {
	for _, item := range v.items {
		if item.ID == id {
			return item, true
		}
	}
	return resource.Item{}, false
}

func (v *View) replaceItem(item resource.Item) {
	for i := range v.items {
		if v.items[i].ID == item.ID {
			v.items[i] = item
			return
		}
	}
}
