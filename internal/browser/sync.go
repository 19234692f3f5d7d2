package browser

import "github.com/tonetui/tone/internal/resource"

// BeginRefresh advances the view's generation and returns the new value,
// which tags the fetch about to be issued. Starting another refresh before
// the first completes supersedes it: the earlier result fails the
// generation check on arrival and is dropped, whatever order the fetches
// finish in.
func (v *View) BeginRefresh() int {
	v.generation++
	return v.generation
}

// Generation returns the tag the next applied result must carry.
func (v *View) Generation() int { return v.generation }

// ApplyList delivers the outcome of a list fetch tagged with gen. Stale
// results are dropped silently. A failure records the error but keeps the
// previous items on screen; only a successful fetch replaces the snapshot.
// The cursor follows its item into the new snapshot when the item still
// exists, and clamps otherwise.
func (v *View) ApplyList(gen int, items []resource.Item, err error) bool {
	if gen != v.generation {
		return false
	}
	if err != nil {
		v.lastError = err
		return true
	}
	var prevID string
	if item, ok := v.SelectedItem(); ok {
		prevID = item.ID
	}
	v.items = items
	v.lastError = nil
	v.clampSelection()
	if prevID != "" {
		for i, item := range v.Visible() {
			if item.ID == prevID {
				v.selected = i
				break
			}
		}
	}
	return true
}
