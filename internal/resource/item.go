package resource

// ColumnState is the cell key every stateful kind renders its state label
// under.
const ColumnState = "STATE"

// Item is one row of a pool: a flat snapshot with its display cells
// already extracted. Items are values; a state transition replaces the
// whole item rather than mutating it.
type Item struct {
	ID    string
	Name  string
	State string
	Cells map[string]string
}

// WithState returns a copy of the item showing the given state label. The
// cell map is cloned so the original snapshot stays intact.
func (i Item) WithState(state string) Item {
	cells := make(map[string]string, len(i.Cells)+1)
	for k, v := range i.Cells {
		cells[k] = v
	}
	cells[ColumnState] = state
	i.State = state
	i.Cells = cells
	return i
}
