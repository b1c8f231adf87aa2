package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/diary/pkg/entry"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		m.commitPending("")
		m.stopWatch()
		return tea.Quit
	}

	switch m.mode {
	case modeHelp:
		return m.handleHelpKey(msg)
	case modePrompt:
		return m.handlePromptKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeTodos:
		return m.handleTodoKey(msg)
	default:
		return m.handleEditKey(msg)
	}
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return m.moveSection(1)
	case "shift+tab":
		return m.moveSection(-1)
	case "down":
		if in := m.inputs[m.current()]; in.Line() >= in.LineCount()-1 {
			return m.moveSection(1)
		}
	case "up":
		if m.inputs[m.current()].Line() == 0 {
			return m.moveSection(-1)
		}
	case "ctrl+s":
		m.commitPending("saved")
		return nil
	case "ctrl+z":
		m.undo()
		return nil
	case "ctrl+y":
		m.redo()
		return nil
	case "pgup":
		return m.shiftDate(-1)
	case "pgdown":
		return m.shiftDate(1)
	case "ctrl+g":
		return m.openPrompt(promptDate, "date (YYYY-MM-DD or today)")
	case "ctrl+o":
		return m.openPrompt(promptMedia, "image url or file, or video url")
	case "ctrl+x":
		m.detach()
		return nil
	case "ctrl+f":
		m.commitPending("")
		m.mode = modeSearch
		m.command.Reset()
		m.command.Placeholder = "search"
		m.command.SetValue(m.state.Query)
		m.command.CursorEnd()
		m.search(m.state.Query)
		m.inputs[m.current()].Blur()
		return m.command.Focus()
	case "ctrl+t":
		m.commitPending("")
		m.mode = modeTodos
		m.inputs[m.current()].Blur()
		m.refreshTodos()
		return nil
	case "f1":
		m.mode = modeHelp
		return nil
	}

	i := m.current()
	before := m.inputs[i].Value()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	if m.inputs[i].Value() != before {
		return tea.Batch(cmd, m.markDirty())
	}
	return cmd
}

func (m *Model) openPrompt(kind promptKind, placeholder string) tea.Cmd {
	m.commitPending("")
	m.mode = modePrompt
	m.prompt = kind
	m.command.Reset()
	m.command.Placeholder = placeholder
	m.inputs[m.current()].Blur()
	return tea.Batch(m.command.Focus(), textinput.Blink)
}

func (m *Model) closeOverlay() tea.Cmd {
	m.mode = modeEdit
	m.prompt = promptNone
	m.command.Reset()
	m.command.Blur()
	return m.focusSection()
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.status = "cancelled"
		if m.prompt == promptTodo {
			m.mode = modeTodos
			m.prompt = promptNone
			m.command.Reset()
			m.command.Blur()
			return nil
		}
		return m.closeOverlay()
	case "enter":
		input := strings.TrimSpace(m.command.Value())
		kind := m.prompt
		cmd := m.closeOverlay()
		switch kind {
		case promptMedia:
			m.attach(input)
		case promptTodo:
			if input != "" {
				m.addTodo(input)
			}
			m.mode = modeTodos
			m.inputs[m.current()].Blur()
			return nil
		case promptDate:
			if input == "" || input == "today" {
				input = entry.Today(m.now())
			}
			return tea.Batch(cmd, m.goTo(input))
		}
		return cmd
	}
	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return cmd
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.closeOverlay()
	case "up":
		if m.resultIndex > 0 {
			m.resultIndex--
		}
		return nil
	case "down":
		if m.resultIndex < len(m.results)-1 {
			m.resultIndex++
		}
		return nil
	case "enter":
		if m.resultIndex >= len(m.results) {
			return nil
		}
		date := m.results[m.resultIndex].Date
		cmd := m.closeOverlay()
		return tea.Batch(cmd, m.goTo(date))
	}
	before := m.command.Value()
	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	if m.command.Value() != before {
		m.resultIndex = 0
		m.search(m.command.Value())
	}
	return cmd
}

func (m *Model) handleTodoKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+t", "q":
		m.mode = modeEdit
		return m.focusSection()
	case "j", "down":
		if m.todoIndex < len(m.todos)-1 {
			m.todoIndex++
		}
	case "k", "up":
		if m.todoIndex > 0 {
			m.todoIndex--
		}
	case "x", "enter":
		m.completeTodo()
	case "d":
		m.deleteTodo()
	case "a", "o":
		cmd := m.openPrompt(promptTodo, "todo title [@YYYY.MM.DD]")
		return cmd
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "f1", "q":
		m.mode = modeEdit
		return m.focusSection()
	}
	return nil
}
