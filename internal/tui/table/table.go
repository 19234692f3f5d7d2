// Package table renders resource items in a bordered, fixed-column
// table. Cursor and scroll positions belong to the caller; the model
// owns the column layout and rendering alone.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
)

const (
	// Height of the table header
	headerHeight = 1
	// Height of the top and bottom borders
	borderHeight = 2
)

// Model defines the state for the table widget.
type Model struct {
	cols        []Column
	rowRenderer RowRenderer

	border lipgloss.Border

	width  int
	height int
}

// RowRenderer renders an item into cell contents keyed by column.
type RowRenderer func(resource.Item) RenderedRow

// RenderedRow provides the rendered string for each column in a row.
type RenderedRow map[ColumnKey]string

// New creates a new model for the table widget.
func New(columns []Column, fn RowRenderer, width, height int) Model {
	m := Model{
		rowRenderer: fn,
		border:      lipgloss.NormalBorder(),
	}
	// Copy column structs onto the receiver: widths are recalculated per
	// table and the caller may share the column slice between tables.
	m.cols = make([]Column, len(columns))
	copy(m.cols, columns)
	for i := range m.cols {
		if m.cols[i].TruncationFunc == nil {
			m.cols[i].TruncationFunc = defaultTruncationFunc
		}
	}
	m.SetDimensions(width, height)
	return m
}

// SetDimensions resizes the table to the given outer dimensions, borders
// included.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
	m.recalculateWidth()
}

func (m Model) innerWidth() int {
	return max(0, m.width-2)
}

// ContentHeight returns the number of item rows visible at once.
func (m Model) ContentHeight() int {
	return max(0, m.height-headerHeight-borderHeight)
}

// View renders items with the row at cursor highlighted, starting at row
// start. The metadata string is embedded centered in the top border.
func (m Model) View(items []resource.Item, cursor, start int, metadata string) string {
	visible := max(0, min(m.ContentHeight(), len(items)-start))

	rows := make([]string, 0, visible+1)
	rows = append(rows, m.headersView())
	for i := 0; i < visible; i++ {
		rows = append(rows, m.renderRow(items[start+i], start+i == cursor))
	}
	content := lipgloss.NewStyle().
		Width(m.innerWidth()).
		MaxWidth(m.innerWidth()).
		Height(headerHeight + m.ContentHeight()).
		Render(lipgloss.JoinVertical(lipgloss.Top, rows...))

	// total length of top border runes, not including corners
	topBorderLength := max(0, m.width-tui.Width(metadata)-2)
	topBorderLeftLength := topBorderLength / 2
	topBorderRightLength := topBorderLength - topBorderLeftLength
	topBorder := fmt.Sprintf("%s%s%s%s%s",
		m.border.TopLeft,
		strings.Repeat(m.border.Top, topBorderLeftLength),
		metadata,
		strings.Repeat(m.border.Top, topBorderRightLength),
		m.border.TopRight,
	)

	return lipgloss.JoinVertical(lipgloss.Top,
		topBorder,
		lipgloss.NewStyle().Border(m.border, false, true, true, true).Render(content),
	)
}

func (m Model) headersView() string {
	var s = make([]string, 0, len(m.cols))
	for _, col := range m.cols {
		style := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true)
		renderedCell := style.Render(runewidth.Truncate(col.Title, col.Width, "…"))
		s = append(s, tui.Regular.Padding(0, 1).Render(renderedCell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, s...)
}

func (m Model) renderRow(item resource.Item, current bool) string {
	var renderedCells = make([]string, len(m.cols))
	cells := m.rowRenderer(item)
	for i, col := range m.cols {
		content := cells[col.Key]
		// Truncate content if it is wider than column
		truncated := col.TruncationFunc(content, col.Width, "…")
		// Ensure content is all on one line.
		inlined := lipgloss.NewStyle().
			Width(col.Width).
			MaxWidth(col.Width).
			Inline(true).
			Render(truncated)
		renderedCells[i] = lipgloss.NewStyle().Padding(0, 1).Render(inlined)
	}

	renderedRow := lipgloss.JoinHorizontal(lipgloss.Left, renderedCells...)

	// The current row replaces any cell coloring with the highlight
	// colors across the full row.
	if current {
		renderedRow = ansi.Strip(renderedRow)
		renderedRow = lipgloss.NewStyle().
			Bold(true).
			Foreground(tui.CurrentForeground).
			Background(tui.CurrentBackground).
			Render(renderedRow)
	}
	return renderedRow
}
