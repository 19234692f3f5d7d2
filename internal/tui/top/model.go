package top

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/tonetui/tone/internal/app"
	"github.com/tonetui/tone/internal/browser"
	"github.com/tonetui/tone/internal/logging"
	"github.com/tonetui/tone/internal/resource"
	"github.com/tonetui/tone/internal/tui"
	"github.com/tonetui/tone/internal/tui/keys"
	"github.com/tonetui/tone/internal/tui/table"
)

// mode tracks which input surface owns the keyboard.
type mode int

const (
	normalMode mode = iota
	commandMode
	filterMode
	chordMode
	confirmMode
	helpMode
	describeMode
	logsMode
)

type model struct {
	session  *browser.Session
	provider tui.Provider
	logger   *logging.Logger

	width  int
	height int

	mode mode

	table table.Model

	// err and info hold the transient status line message. Any keypress
	// clears them.
	err  error
	info string

	command commandBar

	filterInput  textinput.Model
	filterBackup string

	// chordSeq invalidates stale chord expiry timers.
	chordSeq int

	confirm  confirmState
	describe describeOverlay
	logs     logsOverlay

	spinner  *spinner.Model
	inflight int

	// dump log messages to a file, for debugging purposes.
	dump *os.File
}

func newModel(cfg app.Config, app *app.App) (model, error) {
	var dump *os.File
	if cfg.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, err
		}
	}

	s := spinner.New(spinner.WithSpinner(spinner.Line))
	m := model{
		session:  app.Session,
		provider: app.Provider,
		logger:   app.Logger,
		spinner:  &s,
		dump:     dump,
	}
	m.table = table.New(table.ForKind(m.session.Current().Kind), rowRenderer(m.session.Current().Kind), 0, 0)
	return m, nil
}

// rowRenderer builds the cell renderer for a kind. State cells are
// colored by their label; everything else renders as-is.
func rowRenderer(kind resource.Kind) table.RowRenderer {
	desc := resource.Describe(kind)
	return func(item resource.Item) table.RenderedRow {
		row := make(table.RenderedRow, len(desc.Columns))
		for _, col := range desc.Columns {
			cell := item.Cells[col.Key]
			if col.Format == resource.FormatState {
				cell = tui.Regular.Foreground(tui.StateColor(item.State)).Render(cell)
			}
			row[table.ColumnKey(col.Key)] = cell
		}
		return row
	}
}

func (m model) Init() tea.Cmd {
	return tui.CmdHandler(autoRefreshMsg{})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			// Let the tick chain die once nothing is in flight.
			return m, nil
		}
		*m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case autoRefreshMsg:
		cmd = m.refreshView(m.session.Current())
		return m, cmd

	case listResultMsg:
		return m.handleListResult(msg)

	case detailResultMsg:
		return m.handleDetailResult(msg)

	case actionResultMsg:
		return m.handleActionResult(msg)

	case chordExpiredMsg:
		if m.mode == chordMode && msg.seq == m.chordSeq {
			m.mode = normalMode
		}
		return m, nil

	case logging.Message:
		if m.mode == logsMode {
			m.logs.refresh(m.logger)
		}
		return m, nil

	case tui.ErrorMsg:
		err := fmt.Errorf(msg.Message+": %w", append(msg.Args, msg.Error)...)
		m.err = err
		m.logger.Error(err.Error())
		return m, nil

	case tui.InfoMsg:
		m.info = string(msg)
		return m, nil

	case tea.KeyMsg:
		// Any keypress supersedes whatever the status line was showing.
		m.err = nil
		m.info = ""

		if key.Matches(msg, keys.Global.Exit) {
			return m, tea.Quit
		}

		switch m.mode {
		case commandMode:
			return m.updateCommand(msg)
		case filterMode:
			return m.updateFilter(msg)
		case chordMode:
			return m.updateChord(msg)
		case confirmMode:
			return m.updateConfirm(msg)
		case helpMode:
			return m.updateHelp(msg)
		case describeMode:
			return m.updateDescribe(msg)
		case logsMode:
			return m.updateLogs(msg)
		default:
			return m.updateNormal(msg)
		}

	default:
		// Cursor blinks and other internal messages flow to whichever
		// text input currently has focus.
		switch m.mode {
		case commandMode:
			m.command.input, cmd = m.command.input.Update(msg)
			return m, cmd
		case filterMode:
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.session.Current()
	switch {
	case key.Matches(msg, keys.Global.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Global.Help):
		m.mode = helpMode
	case key.Matches(msg, keys.Global.Command):
		m.mode = commandMode
		cmd := m.command.open()
		m.layout()
		return m, cmd
	case key.Matches(msg, keys.Global.Filter):
		m.mode = filterMode
		m.filterBackup = v.Filter()
		m.filterInput = textinput.New()
		m.filterInput.Prompt = "/"
		m.filterInput.SetValue(v.Filter())
		m.filterInput.CursorEnd()
		m.layout()
		cmd := m.filterInput.Focus()
		return m, cmd
	case key.Matches(msg, keys.Global.Refresh):
		cmd := m.refreshView(v)
		return m, cmd
	case key.Matches(msg, keys.Global.Describe):
		item, ok := v.SelectedItem()
		if !ok {
			return m, nil
		}
		return m.openDescribe(v, item)
	case key.Matches(msg, keys.Global.Back), key.Matches(msg, keys.Global.Escape):
		return m.popView()
	case key.Matches(msg, keys.Navigation.LineUp):
		v.MoveSelection(-1)
		v.EnsureVisible(m.table.ContentHeight())
	case key.Matches(msg, keys.Navigation.LineDown):
		v.MoveSelection(1)
		v.EnsureVisible(m.table.ContentHeight())
	case key.Matches(msg, keys.Navigation.PageUp):
		v.PageUp(m.table.ContentHeight())
		v.EnsureVisible(m.table.ContentHeight())
	case key.Matches(msg, keys.Navigation.PageDown):
		v.PageDown(m.table.ContentHeight())
		v.EnsureVisible(m.table.ContentHeight())
	case key.Matches(msg, keys.Navigation.GotoTop):
		// A lone 'g' arms the gg chord; 'home' jumps immediately.
		if msg.String() == "g" {
			m.mode = chordMode
			m.chordSeq++
			return m, expireChord(m.chordSeq)
		}
		v.GoTop()
		v.EnsureVisible(m.table.ContentHeight())
	case key.Matches(msg, keys.Navigation.GotoBottom):
		v.GoBottom()
		v.EnsureVisible(m.table.ContentHeight())
	default:
		if action, ok := keys.ActionFor(msg); ok {
			return m.startAction(v, action)
		}
	}
	return m, nil
}

// updateChord handles the key following a lone 'g'. A second 'g' jumps
// to the top; anything else is swallowed.
func (m model) updateChord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = normalMode
	if msg.String() == "g" {
		v := m.session.Current()
		v.GoTop()
		v.EnsureVisible(m.table.ContentHeight())
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.session.Current()
	switch {
	case key.Matches(msg, keys.Global.Escape):
		// Revert to whatever filter was in force before editing began.
		v.SetFilter(m.filterBackup)
		m.mode = normalMode
		m.layout()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.mode = normalMode
		m.layout()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	// The view narrows with every keystroke, not just on submission.
	v.SetFilter(m.filterInput.Value())
	v.EnsureVisible(m.table.ContentHeight())
	return m, cmd
}

// startAction routes a pressed action key through the session's
// authorization gates.
func (m model) startAction(v *browser.View, action resource.Action) (tea.Model, tea.Cmd) {
	item, ok := v.SelectedItem()
	if !ok {
		return m, nil
	}
	inv, outcome, err := m.session.Invoke(v, item, action, false)
	if err != nil {
		m.err = err
		return m, nil
	}
	switch outcome {
	case browser.OutcomeAwaitingConfirmation:
		m.mode = confirmMode
		m.confirm = confirmState{item: item, action: action}
	case browser.OutcomeAlreadyPending:
		m.info = fmt.Sprintf("An action is already pending for %s", item.Name)
	case browser.OutcomeInvoked:
		m.logger.Info("invoking action", "action", action, "kind", v.Kind, "id", item.ID)
		return m, m.submitAction(inv)
	}
	return m, nil
}

// popView leaves the current view, restoring whatever selection and
// filter the view below had. Popping the root view is refused.
func (m model) popView() (tea.Model, tea.Cmd) {
	if !m.session.Pop() {
		m.info = m.session.Status()
		m.session.ClearStatus()
		return m, nil
	}
	m.layout()
	cmd := m.refreshView(m.session.Current())
	return m, cmd
}

func (m model) handleListResult(msg listResultMsg) (tea.Model, tea.Cmd) {
	m.inflight = max(0, m.inflight-1)
	v := m.session.ViewByID(msg.viewID)
	if v == nil {
		// The view was popped while the fetch was in flight.
		return m, nil
	}
	if !v.ApplyList(msg.gen, msg.items, msg.err) {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Error("refreshing view", "kind", v.Kind, "error", msg.err)
		return m, nil
	}
	v.EnsureVisible(m.table.ContentHeight())
	return m, nil
}

func (m model) handleDetailResult(msg detailResultMsg) (tea.Model, tea.Cmd) {
	m.inflight = max(0, m.inflight-1)
	if m.mode != describeMode || !m.describe.matches(msg.kind, msg.id) {
		// The overlay was closed or retargeted in the meantime.
		return m, nil
	}
	if msg.err != nil {
		m.mode = normalMode
		return m, tui.ReportError(msg.err, "describing %s", msg.id)
	}
	if err := m.describe.setDocument(msg.doc); err != nil {
		return m, tui.ReportError(err, "rendering document")
	}
	return m, nil
}

func (m model) handleActionResult(msg actionResultMsg) (tea.Model, tea.Cmd) {
	v := m.session.ViewByID(msg.inv.ViewID)
	if v == nil {
		return m, nil
	}
	v.Complete(msg.inv, msg.err)
	if msg.err != nil {
		m.logger.Error("action failed", "action", msg.inv.Action, "kind", msg.inv.Kind, "id", msg.inv.ItemID, "error", msg.err)
		return m, nil
	}
	// Refresh promptly so the provisional state reconciles with the
	// server's.
	cmd := m.refreshView(v)
	return m, cmd
}

// refreshView starts a pool fetch for the view and keeps the spinner
// ticking while anything is in flight.
func (m *model) refreshView(v *browser.View) tea.Cmd {
	return m.startFetch(m.fetchList(v))
}

func (m *model) startFetch(fetch tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{fetch}
	if m.inflight == 0 {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.inflight++
	return tea.Batch(cmds...)
}

// layout resizes the table and overlays to the current terminal
// dimensions and whatever chrome the current mode adds.
func (m *model) layout() {
	v := m.session.Current()
	m.table = table.New(table.ForKind(v.Kind), rowRenderer(v.Kind), m.width, m.tableHeight())
	m.describe.setDimensions(m.overlayWidth(), m.overlayHeight())
	m.logs.setDimensions(m.overlayWidth(), m.overlayHeight())
	v.EnsureVisible(m.table.ContentHeight())
}

func (m model) contentHeight() int {
	return max(0, m.height-headerHeight-footerHeight)
}

func (m model) tableHeight() int {
	h := m.contentHeight()
	if m.filterVisible() {
		h--
	}
	if m.mode == commandMode {
		h -= m.command.height()
	}
	return max(h, minTableHeight)
}

func (m model) overlayWidth() int  { return max(0, m.width-2) }
func (m model) overlayHeight() int { return max(0, m.contentHeight()-2) }

// filterVisible reports whether the filter bar occupies a line: while
// it is being edited, and while a committed filter narrows the view.
func (m model) filterVisible() bool {
	return m.mode == filterMode || m.session.Current().Filter() != ""
}
