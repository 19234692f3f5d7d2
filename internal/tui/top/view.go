package top

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/errdef"
	"github.com/tonetui/tone/internal/one"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
)

const (
	// headerHeight is the bordered connection panel: three lines of
	// content plus the border.
	headerHeight = 5
	// footerHeight is the breadcrumb and status line.
	footerHeight = 1
	// minTableHeight keeps the table's frame and header visible however
	// much chrome the current mode adds.
	minTableHeight = 3
)

func (m model) View() string {
	v := m.session.Current()

	var content string
	switch m.mode {
	case helpMode:
		content = m.helpView()
	case describeMode:
		content = m.describe.view(m.width)
	case logsMode:
		content = m.logs.view(m.width)
	case confirmMode:
		content = m.confirmView()
	default:
		content = m.browseView(v)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		tui.Regular.
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()).
			Render(content),
		m.footerView(v),
	)
}

// browseView is the main surface: the table, plus the filter bar and
// command box when active.
func (m model) browseView(v *browser.View) string {
	sections := make([]string, 0, 3)
	if m.filterVisible() {
		sections = append(sections, m.filterBarView(v))
	}
	sections = append(sections, m.table.View(v.Visible(), v.Selected(), v.ScrollOffset(), m.tableMetadata(v)))
	if m.mode == commandMode {
		sections = append(sections, m.command.view(m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// headerView renders the connection panel: the endpoint, the
// authenticated user, whether the session can mutate anything, and the
// key bindings a newcomer needs.
func (m model) headerView() string {
	inner := max(0, m.width-2)

	endpoint := " Endpoint: " + tui.Regular.Foreground(tui.Cyan).Render(m.session.Endpoint())

	user := " User: " + tui.Regular.Foreground(tui.Green).Render(m.session.Username())
	badge := tui.Bold.Foreground(tui.Green).Render("READ-WRITE ")
	if m.session.Readonly() {
		badge = tui.Bold.Foreground(tui.Yellow).Render("READ-ONLY ")
	}
	gap := max(1, inner-tui.Width(user)-tui.Width(badge))
	userLine := user + strings.Repeat(" ", gap) + badge

	hints := tui.Regular.Foreground(tui.LightGrey).
		Render(" ?:help  ::command  /:filter  R:refresh  q:quit")

	content := strings.Join([]string{endpoint, userLine, hints}, "\n")
	return boxWithTitle(" tone ", tui.Bold.Foreground(tui.Violet), content, m.width, lipgloss.NoColor{})
}

// footerView renders the breadcrumb trail and the status line, with
// the spinner on the right while a fetch is in flight.
func (m model) footerView(v *browser.View) string {
	crumb := tui.Regular.
		Foreground(tui.Black).
		Background(tui.Cyan).
		Render(" " + strings.Join(m.session.Breadcrumb(), " > ") + " ")

	var status string
	switch {
	case v.LastError() != nil:
		status = tui.Padded.Foreground(tui.Red).Render("Error: " + one.FormatError(v.LastError()))
	case m.err != nil:
		status = tui.Padded.Foreground(tui.Red).Render("Error: " + errdef.UserMessage(m.err))
	case m.info != "":
		status = tui.Padded.Foreground(tui.Yellow).Render(m.info)
	default:
		status = tui.Padded.Foreground(tui.DarkGrey).Render(m.hint())
	}

	var right string
	if m.inflight > 0 {
		right = tui.Padded.Render(m.spinner.View())
	}
	avail := max(0, m.width-tui.Width(right))
	left := tui.Regular.Inline(true).MaxWidth(avail).Render(crumb + status)
	pad := strings.Repeat(" ", max(0, avail-tui.Width(left)))
	return left + pad + right
}

// hint is the status line's idle text for the current mode.
func (m model) hint() string {
	switch m.mode {
	case filterMode:
		return "Type to filter | Enter: apply | Esc: cancel"
	case commandMode:
		return "Tab: next | →: complete | Enter: run | Esc: close"
	case describeMode:
		return "j/k: scroll | q/d/Esc: back"
	case logsMode:
		return "j/k: scroll | q/Esc: back"
	case helpMode:
		return "Esc: close help"
	}
	return ""
}

func (m model) filterBarView(v *browser.View) string {
	if m.mode == filterMode {
		return tui.Bold.Foreground(tui.Yellow).Render(m.filterInput.View())
	}
	return tui.Regular.Foreground(tui.DarkGrey).Render("/" + v.Filter())
}

// tableMetadata is the title embedded in the table's top border. A
// filtered view shows how many of the pool's items survive the filter.
func (m model) tableMetadata(v *browser.View) string {
	desc := resource.Describe(v.Kind)
	var counts string
	if v.Filter() != "" {
		counts = fmt.Sprintf("%d/%d", len(v.Visible()), len(v.Items()))
	} else {
		counts = strconv.Itoa(len(v.Items()))
	}
	return tui.Bold.Foreground(tui.Cyan).Render(fmt.Sprintf(" %s[%s] ", desc.Title, counts))
}

// boxWithTitle frames content with a border carrying a title centered
// in its top edge. The title keeps its own styling regardless of the
// border color.
func boxWithTitle(title string, titleStyle lipgloss.Style, content string, width int, borderColor lipgloss.TerminalColor) string {
	border := lipgloss.NormalBorder()
	rendered := titleStyle.Render(title)
	run := max(0, width-tui.Width(rendered)-2)
	left, right := run/2, run-run/2

	edge := tui.Regular.Foreground(borderColor)
	top := edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		rendered +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)

	framed := tui.Regular.
		Border(border, false, true, true, true).
		BorderForeground(borderColor).
		Render(tui.Regular.Width(max(0, width-2)).MaxWidth(max(0, width-2)).Render(content))

	return lipgloss.JoinVertical(lipgloss.Left, top, framed)
}
