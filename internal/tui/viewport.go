package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/hokaccha/go-prettyjson"

	"github.com/tonetui/tone/internal/tui/keys"
)

// Viewport is a wrapper of the upstream viewport bubble, handling
// navigation keys, scrollbar rendering, and optional JSON prettifying.
type Viewport struct {
	viewport viewport.Model

	content    []byte
	json       bool
	autoscroll bool
	spinner    *spinner.Model
}

type ViewportOptions struct {
	Width  int
	Height int
	// JSON is true if the content is a json document, to be colorized
	// and indented before display.
	JSON bool
	// Autoscroll keeps the viewport scrolled to the bottom as content is
	// replaced.
	Autoscroll bool
	Spinner    *spinner.Model
}

func NewViewport(opts ViewportOptions) Viewport {
	m := Viewport{
		viewport:   viewport.New(0, 0),
		json:       opts.JSON,
		autoscroll: opts.Autoscroll,
		spinner:    opts.Spinner,
	}
	m.SetDimensions(opts.Width, opts.Height)
	return m
}

func (m Viewport) Update(msg tea.Msg) (Viewport, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.GotoTop):
			m.viewport.SetYOffset(0)
			return m, nil
		case key.Matches(msg, keys.Navigation.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, keys.Navigation.PageUp):
			m.viewport.ViewUp()
			return m, nil
		case key.Matches(msg, keys.Navigation.PageDown):
			m.viewport.ViewDown()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Viewport) View() string {
	var output string
	if len(m.content) == 0 {
		msg := "Loading..."
		if m.spinner != nil {
			msg += " " + m.spinner.View()
		}
		output = Regular.
			Height(m.viewport.Height).
			Width(m.viewport.Width).
			Render(msg)
	} else {
		output = m.viewport.View()
	}
	scrollbar := Scrollbar(
		m.viewport.Height,
		m.viewport.TotalLineCount(),
		m.viewport.VisibleLineCount(),
		m.viewport.YOffset,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, output, scrollbar)
}

func (m *Viewport) SetDimensions(width, height int) {
	width = max(0, width-ScrollbarWidth)
	// If width has changed, re-wrap existing content.
	rewrap := m.viewport.Width != width
	m.viewport.Width = width
	m.viewport.Height = height
	if rewrap {
		m.setContent()
	}
}

// SetContent replaces the viewport content. JSON content is prettified
// first; on malformed JSON the raw content is shown and an error
// returned.
func (m *Viewport) SetContent(content []byte) (err error) {
	if m.json && len(content) > 0 {
		if prettified, fmterr := prettyjson.Format(content); fmterr != nil {
			err = fmt.Errorf("pretty printing json content: %w", fmterr)
		} else {
			content = prettified
		}
	}
	m.content = content
	m.setContent()
	if m.autoscroll {
		m.viewport.GotoBottom()
	}
	return err
}

func (m *Viewport) setContent() {
	// Wrap content to the width of the viewport, whilst respecting ANSI
	// escape codes (i.e. don't split codes across lines).
	wrapped := ansi.Wrap(ansi.Wordwrap(string(m.content), m.viewport.Width, ""), m.viewport.Width, "")
	sanitized := SanitizeColors([]byte(wrapped))
	m.viewport.SetContent(string(sanitized))
}
