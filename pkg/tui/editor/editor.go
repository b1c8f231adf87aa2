// Package editor is the Bubble Tea front end for writing one day's entry.
//
// Typing is coalesced: a section's text becomes a new history version after
// IdleCommit without keystrokes, when focus leaves the section, on media
// changes and on ctrl+s. Every version is written through app.Session, so
// undo and redo are persisted the same way edits are.
package editor

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/media"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/todo"
	"tableflip.dev/diary/pkg/tui/theme"
)

// IdleCommit is how long typing must pause before it is recorded.
const IdleCommit = 750 * time.Millisecond

type mode int

const (
	modeEdit mode = iota
	modePrompt
	modeSearch
	modeTodos
	modeHelp
)

type promptKind int

const (
	promptNone promptKind = iota
	promptMedia
	promptTodo
	promptDate
)

// Options configure a new editor.
type Options struct {
	// Date to open, YYYY-MM-DD. Defaults to today.
	Date string
	Now  func() time.Time
	// Logger receives diagnostics when set, e.g. with --debug.
	Logger *log.Logger
}

// Model is the editor state. It owns the navigation state; the journal
// packages never see it.
type Model struct {
	svc     *app.Service
	session *app.Session
	state   app.State
	ctx     context.Context
	now     func() time.Time
	logger  *log.Logger
	theme   theme.Theme

	mode   mode
	prompt promptKind

	inputs   []textarea.Model
	baseline []string
	dirty    bool
	editSeq  int

	command     textinput.Model
	results     []entry.Entry
	resultIndex int
	todos       []todo.Todo
	todoIndex   int

	status string
	err    error

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New opens the entry for opts.Date in a fresh history session.
func New(svc *app.Service, opts Options) (*Model, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		svc:    svc,
		ctx:    context.Background(),
		now:    now,
		logger: opts.Logger,
		theme:  theme.Default(),
		state:  app.NewState(now()),
	}
	if opts.Date != "" {
		m.state.Date = opts.Date
	}

	for _, k := range section.Keys() {
		ta := textarea.New()
		ta.Prompt = ""
		ta.ShowLineNumbers = false
		ta.CharLimit = 0
		ta.Placeholder = k.Glyph().Placeholder
		ta.SetHeight(sectionRows(k))
		m.inputs = append(m.inputs, ta)
		m.baseline = append(m.baseline, "")
	}
	m.command = textinput.New()
	m.command.Prompt = ""

	if err := m.openDate(m.state.Date); err != nil {
		return nil, err
	}
	m.refreshTodos()
	m.status = "f1 help · ctrl+z undo · ctrl+y redo · ctrl+q quit"
	return m, nil
}

// Init focuses the diary section and starts watching the store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.focusSection(), textarea.Blink, startWatchCmd(m.ctx, m.svc))
}

type idleMsg struct {
	seq int
}

func idleCmd(seq int) tea.Cmd {
	return tea.Tick(IdleCommit, func(time.Time) tea.Msg { return idleMsg{seq: seq} })
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
	case idleMsg:
		if msg.seq == m.editSeq && m.dirty {
			m.commitPending("saved")
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.logf("watch: %v", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// Date is the date being edited.
func (m *Model) Date() string {
	return m.state.Date
}

// Session is the history session for the current date.
func (m *Model) Session() *app.Session {
	return m.session
}

// Err is the last persistence error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) current() int {
	return m.state.Section.Index()
}

func (m *Model) focusSection() tea.Cmd {
	for i := range m.inputs {
		if i != m.current() {
			m.inputs[i].Blur()
		}
	}
	return m.inputs[m.current()].Focus()
}

// openDate starts a new history session for date. Pending typing on the
// previous date is committed first.
func (m *Model) openDate(date string) error {
	if m.session != nil {
		m.commitPending("")
	}
	s, err := m.svc.Open(date)
	if err != nil {
		return err
	}
	m.session = s
	m.state.Date = date
	m.loadInputs()
	m.logf("open %s", date)
	return nil
}

// loadInputs shows the session's current version. The baseline keeps what
// each input was given so untouched sections are never rewritten.
func (m *Model) loadInputs() {
	cur := m.session.Current()
	for i, k := range section.Keys() {
		m.inputs[i].SetValue(cur.Section(k).Text)
		m.inputs[i].CursorEnd()
		m.baseline[i] = m.inputs[i].Value()
	}
	m.dirty = false
}

// commitPending records typed text as one version.
func (m *Model) commitPending(status string) {
	if !m.dirty {
		return
	}
	m.dirty = false
	next := m.session.Current()
	changed := false
	for i, k := range section.Keys() {
		v := m.inputs[i].Value()
		if v == m.baseline[i] {
			continue
		}
		next = next.WithText(k, v)
		changed = true
	}
	if !changed {
		return
	}
	err := m.session.Commit(next)
	for i := range m.inputs {
		m.baseline[i] = m.inputs[i].Value()
	}
	if m.setErr(err) && status != "" {
		m.status = status
	}
}

func (m *Model) markDirty() tea.Cmd {
	m.dirty = true
	m.editSeq++
	return idleCmd(m.editSeq)
}

func (m *Model) undo() {
	m.commitPending("")
	changed, err := m.session.Undo()
	if !changed {
		m.status = "nothing to undo"
		return
	}
	m.loadInputs()
	if m.setErr(err) {
		m.status = "undo"
	}
}

func (m *Model) redo() {
	m.commitPending("")
	changed, err := m.session.Redo()
	if !changed {
		m.status = "nothing to redo"
		return
	}
	m.loadInputs()
	if m.setErr(err) {
		m.status = "redo"
	}
}

func (m *Model) moveSection(delta int) tea.Cmd {
	m.commitPending("")
	if delta > 0 {
		m.state.Section = m.state.Section.Next()
	} else {
		m.state.Section = m.state.Section.Prev()
	}
	return m.focusSection()
}

func (m *Model) shiftDate(days int) tea.Cmd {
	next, err := m.state.Shift(days)
	if err != nil {
		m.setErr(err)
		return nil
	}
	return m.goTo(next.Date)
}

func (m *Model) goTo(date string) tea.Cmd {
	if err := m.openDate(date); err != nil {
		m.setErr(err)
		return nil
	}
	m.status = entry.Display(date)
	return m.focusSection()
}

func (m *Model) attach(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		m.status = "no media attached"
		return
	}
	url, err := media.Inline(url)
	if err != nil {
		m.setErr(err)
		return
	}
	typ := entry.MediaImage
	if !media.IsDataURL(url) && media.VideoID(url) != "" {
		typ = entry.MediaVideo
	}
	m.commitPending("")
	err = m.session.Attach(m.state.Section, entry.NewMedia(typ, url))
	if m.setErr(err) {
		m.status = "attached " + string(typ) + " to " + m.state.Section.Label()
	}
}

func (m *Model) detach() {
	m.commitPending("")
	err := m.session.Detach(m.state.Section)
	if m.setErr(err) {
		m.status = "removed media from " + m.state.Section.Label()
	}
}

func (m *Model) refreshTodos() {
	m.todos = m.svc.Todos.Active()
	if m.todoIndex >= len(m.todos) {
		m.todoIndex = len(m.todos) - 1
	}
	if m.todoIndex < 0 {
		m.todoIndex = 0
	}
}

// addTodo takes "title" or "title @YYYY.MM.DD".
func (m *Model) addTodo(input string) {
	title, due := input, ""
	if i := strings.LastIndex(input, " @"); i >= 0 {
		title, due = input[:i], strings.TrimSpace(input[i+2:])
	}
	item, err := m.svc.Todos.Add(title, due)
	m.refreshTodos()
	if m.setErr(err) {
		m.status = "added " + item.Title
	}
}

func (m *Model) selectedTodo() (todo.Todo, bool) {
	if m.todoIndex < 0 || m.todoIndex >= len(m.todos) {
		return todo.Todo{}, false
	}
	return m.todos[m.todoIndex], true
}

func (m *Model) completeTodo() {
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	_, err := m.svc.Todos.Complete(t.ID)
	m.refreshTodos()
	if m.setErr(err) {
		m.status = "completed " + t.Title
	}
}

func (m *Model) deleteTodo() {
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	_, err := m.svc.Todos.Delete(t.ID)
	m.refreshTodos()
	if m.setErr(err) {
		m.status = "deleted " + t.Title
	}
}

func (m *Model) search(query string) {
	m.state.Query = query
	m.results = m.svc.Entries.Search(query)
	if m.resultIndex >= len(m.results) {
		m.resultIndex = 0
	}
}

// setErr records err for the status line and reports whether it was nil.
// Memory stays authoritative after a failed write, so editing continues.
func (m *Model) setErr(err error) bool {
	m.err = err
	if err != nil {
		m.status = "ERR: " + err.Error()
		m.logf("error: %v", err)
		return false
	}
	return true
}

func (m *Model) logf(format string, args ...interface{}) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}

// applySizes recalculates input widths based on current terminal size.
func (m *Model) applySizes() {
	w := m.sectionWidth() - 4
	if w < 10 {
		w = 10
	}
	for i := range m.inputs {
		m.inputs[i].SetWidth(w)
	}
	m.command.SetWidth(w)
}

// Run launches the editor full screen.
func Run(svc *app.Service, opts Options) error {
	m, err := New(svc, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	m.stopWatch()
	return err
}
