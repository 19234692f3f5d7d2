package top

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/lthibault/jitterbug/v2"
	"github.com/stretchr/testify/require"

	"github.com/tonetui/tone/internal/app"
)

// Start builds the terminal app and blocks until the user quits.
func Start(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Cleanup()

	m, err := newModel(cfg, a)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	ch, unsub := setupSubscriptions(a, cfg)
	defer unsub()

	// Relay events to the program in the background.
	go func() {
		for msg := range ch {
			p.Send(msg)
		}
	}()

	_, err = p.Run()
	return err
}

// StartTest builds the app and returns a test model of the terminal
// running it.
func StartTest(t *testing.T, cfg app.Config, width, height int) *teatest.TestModel {
	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Cleanup)

	m, err := newModel(cfg, a)
	require.NoError(t, err)

	ch, unsub := setupSubscriptions(a, cfg)
	t.Cleanup(unsub)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(width, height))

	go func() {
		for msg := range ch {
			tm.Send(msg)
		}
	}()

	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

// setupSubscriptions connects the app's event sources to a channel of
// terminal messages, returning the channel along with a cleanup
// function.
func setupSubscriptions(a *app.App, cfg app.Config) (chan tea.Msg, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan tea.Msg)

	var wg sync.WaitGroup

	// Relay log records so the logs overlay refreshes as they arrive.
	logEvents := a.Logger.Subscribe(ctx)
	wg.Add(1)
	go func() {
		for ev := range logEvents {
			ch <- ev
		}
		wg.Done()
	}()

	// Nudge the current view periodically. The interval is jittered so
	// a fleet of sessions doesn't hammer the same frontend in lockstep.
	if cfg.Refresh > 0 {
		ticker := jitterbug.New(cfg.Refresh, &jitterbug.Norm{Stdev: time.Second})
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					ch <- autoRefreshMsg{}
				}
			}
		}()
	}

	cleanup := func() {
		cancel()
		wg.Wait()
		close(ch)
	}
	return ch, cleanup
}
