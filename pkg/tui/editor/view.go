package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/media"
	"tableflip.dev/diary/pkg/section"
)

const (
	defaultWidth = 80
	todoWidth    = 36
	// Wide terminals show the todo panel beside the entry.
	sideBySide = 110
	wideRows   = 4
)

// sectionRows is the height of a section's text area.
func sectionRows(k section.Key) int {
	if k.Glyph().Wide {
		return wideRows
	}
	return 1
}

func (m *Model) termWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) sectionWidth() int {
	w := m.termWidth()
	if w >= sideBySide {
		w -= todoWidth + 1
	}
	return w
}

// View renders the entry, the todo panel and the status line.
func (m *Model) View() string {
	body := m.renderEntry()
	if m.termWidth() >= sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderTodos())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderTodos())
	}

	switch m.mode {
	case modePrompt:
		body += "\n\n" + m.theme.Footer.Prompt.Render(m.promptLabel()) + m.command.View()
	case modeSearch:
		body += "\n\n" + m.renderSearch()
	case modeHelp:
		body += "\n\n" + m.renderHelp()
	}

	return body + "\n" + m.renderStatus()
}

func (m *Model) renderHeader() string {
	th := m.theme.Header
	date := th.Date.Render(entry.Display(m.state.Date))
	weekday := ""
	if t, err := entry.ParseDate(m.state.Date); err == nil {
		weekday = th.Weekday.Render(t.Weekday().String())
	}
	h := m.session.History()
	hist := fmt.Sprintf("version %d/%d", h.Position()+1, h.Len())
	if m.dirty {
		hist += " •"
	}
	return date + " " + weekday + "  " + th.History.Render(hist)
}

func (m *Model) renderEntry() string {
	th := m.theme.Section
	cur := m.session.Current()
	width := m.sectionWidth() - 2

	blocks := []string{m.renderHeader()}
	for i, k := range section.Keys() {
		g := k.Glyph()
		lines := []string{th.Title.Render(g.Symbol + " " + g.Label), m.inputs[i].View()}
		if md := cur.Section(k).Media; md != nil {
			desc := truncate.StringWithTail(media.Describe(md), uint(width-4), "…")
			lines = append(lines, th.Media.Render(desc))
		}
		frame := th.Frame
		if k == m.state.Section && m.mode == modeEdit {
			frame = th.FocusedFrame
		}
		blocks = append(blocks, frame.Width(width).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) renderTodos() string {
	th := m.theme.Todo
	width := todoWidth - 2
	if m.termWidth() < sideBySide {
		width = m.sectionWidth() - 2
	}
	lines := []string{th.Title.Render(fmt.Sprintf("Todo (%d)", len(m.todos)))}
	if len(m.todos) == 0 {
		lines = append(lines, m.theme.Section.Placeholder.Render("nothing due"))
	}
	now := m.now()
	for i, t := range m.todos {
		dday := t.DDay(now)
		style := th.Upcoming
		switch {
		case dday == "D-Day":
			style = th.Today
		case strings.HasPrefix(dday, "D+"):
			style = th.Overdue
		}
		title := truncate.StringWithTail(t.Title, uint(width-len(dday)-4), "…")
		line := title + " " + style.Render(dday)
		if m.mode == modeTodos && i == m.todoIndex {
			line = th.Selected.Render(title) + " " + style.Render(dday)
		}
		lines = append(lines, line)
	}
	frame := th.Frame
	if m.mode == modeTodos {
		frame = m.theme.Section.FocusedFrame
	}
	return frame.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) promptLabel() string {
	switch m.prompt {
	case promptMedia:
		return "Attach to " + m.state.Section.Label() + ": "
	case promptTodo:
		return "New todo: "
	case promptDate:
		return "Go to: "
	}
	return ": "
}

func (m *Model) renderSearch() string {
	th := m.theme.Modal
	lines := []string{th.Title.Render("Search") + " " + m.command.View()}
	if strings.TrimSpace(m.command.Value()) != "" && len(m.results) == 0 {
		lines = append(lines, "no entries found")
	}
	for i, e := range m.results {
		indicator := "  "
		if i == m.resultIndex {
			indicator = "→ "
		}
		preview := ""
		for _, k := range section.Keys() {
			if e.SectionContains(k, m.command.Value()) {
				preview = k.Glyph().Symbol + " " + strings.Join(strings.Fields(e.Section(k).Text), " ")
				break
			}
		}
		line := indicator + entry.Display(e.Date) + "  " + preview
		lines = append(lines, truncate.StringWithTail(line, uint(m.sectionWidth()-8), "…"))
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	help := []string{
		"tab/shift+tab  next/previous section",
		"up/down        move lines, then sections",
		"enter          new line",
		"ctrl+z/ctrl+y  undo/redo",
		"ctrl+s         save now",
		"pgup/pgdown    previous/next day",
		"ctrl+g         go to date",
		"ctrl+o         attach image (url or file) or video",
		"ctrl+x         remove media",
		"ctrl+f         search entries",
		"ctrl+t         todos (a add, x complete, d delete)",
		"ctrl+q         quit",
	}
	th := m.theme.Modal
	return th.Frame.Render(th.Title.Render("Keys") + "\n" + th.Body.Render(strings.Join(help, "\n")))
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return m.theme.Footer.Error.Render(m.status)
	}
	return m.theme.Footer.Status.Render(m.status)
}
