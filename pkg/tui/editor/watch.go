package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/store"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads what another process changed. The open session
// keeps its own versions; the reload only refreshes lists and todos.
func (m *Model) handleWatchEvent(ev store.Event) {
	m.logf("watch: %s", ev.Type)
	if !m.setErr(m.svc.Reload(ev)) {
		return
	}
	switch ev.Type {
	case store.EventEntriesChanged:
		if m.mode == modeSearch {
			m.search(m.state.Query)
		}
	default:
		m.refreshTodos()
		if m.mode == modeSearch {
			m.search(m.state.Query)
		}
	}
}
