package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/store/storetest"
)

var testNow = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)

func newTestModel(t *testing.T, mem *storetest.Memory) *Model {
	t.Helper()
	svc, err := app.New(mem, 0)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	svc.Todos.SetClock(func() time.Time { return testNow })
	m, err := New(svc, Options{Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func stored(t *testing.T, mem *storetest.Memory, date string) entry.Entry {
	t.Helper()
	entries, err := journal.LoadEntries(mem)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	return entries.EntryFor(date)
}

func press(m *Model, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// typeText replaces the focused section's text the way typing would.
func typeText(m *Model, text string) {
	m.inputs[m.current()].SetValue(text)
	m.markDirty()
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewOpensToday(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	if m.Date() != "2024-03-01" {
		t.Fatalf("expected today, got %s", m.Date())
	}
	if m.state.Section != section.Diary {
		t.Fatalf("expected diary focus, got %s", m.state.Section)
	}
	if m.Session().CanUndo() {
		t.Fatalf("fresh session must not undo")
	}
	if mem.Writes() != 0 {
		t.Fatalf("opening must not write, got %d writes", mem.Writes())
	}
}

func TestIdleCommitOnlyForLatestEdit(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	typeText(m, "hel")
	stale := m.editSeq
	typeText(m, "hello")

	m.Update(idleMsg{seq: stale})
	if got := m.Session().History().Len(); got != 1 {
		t.Fatalf("stale idle tick committed, history len %d", got)
	}

	m.Update(idleMsg{seq: m.editSeq})
	if got := m.Session().History().Len(); got != 2 {
		t.Fatalf("expected one version for the burst, history len %d", got)
	}
	if got := stored(t, mem, "2024-03-01").Section(section.Diary).Text; got != "hello" {
		t.Fatalf("expected hello persisted, got %q", got)
	}
	if m.dirty {
		t.Fatalf("commit should clear dirty")
	}
}

func TestTypingSchedulesIdleCommit(t *testing.T) {
	m := newTestModel(t, storetest.NewMemory())
	m.focusSection()

	cmd := press(m, tea.KeyPressMsg{Text: "h", Code: 'h'})
	if cmd == nil {
		t.Fatalf("expected an idle tick to be scheduled")
	}
	if !m.dirty {
		t.Fatalf("typing should mark the entry dirty")
	}
	if got := m.inputs[0].Value(); got != "h" {
		t.Fatalf("expected typed text, got %q", got)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	typeText(m, "hello")
	press(m, ctrl('s'))
	typeText(m, "hello world")
	press(m, ctrl('s'))

	press(m, ctrl('z'))
	if got := m.inputs[0].Value(); got != "hello" {
		t.Fatalf("undo should restore hello, got %q", got)
	}
	if got := stored(t, mem, "2024-03-01").Section(section.Diary).Text; got != "hello" {
		t.Fatalf("undo should be persisted, got %q", got)
	}

	press(m, ctrl('y'))
	if got := m.inputs[0].Value(); got != "hello world" {
		t.Fatalf("redo should restore hello world, got %q", got)
	}

	press(m, ctrl('y'))
	if m.status != "nothing to redo" {
		t.Fatalf("expected redo no-op status, got %q", m.status)
	}
}

func TestUndoCommitsPendingTypingFirst(t *testing.T) {
	m := newTestModel(t, storetest.NewMemory())

	typeText(m, "draft")
	press(m, ctrl('z'))

	if got := m.inputs[0].Value(); got != "" {
		t.Fatalf("undo should take back the pending draft, got %q", got)
	}
	if !m.Session().CanRedo() {
		t.Fatalf("draft should be redoable")
	}
}

func TestTabCommitsAndMovesFocus(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	typeText(m, "hello")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})

	if m.state.Section != section.Music {
		t.Fatalf("expected music focus, got %s", m.state.Section)
	}
	if got := stored(t, mem, "2024-03-01").Section(section.Diary).Text; got != "hello" {
		t.Fatalf("leaving a section should commit it, got %q", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.state.Section != section.Diary {
		t.Fatalf("expected diary focus, got %s", m.state.Section)
	}
}

func TestUntouchedSectionsKeepStoredText(t *testing.T) {
	mem := storetest.NewMemory()
	svc, err := app.New(mem, 0)
	if err != nil {
		t.Fatal(err)
	}
	multi := "line one\nline two"
	if err := svc.Entries.Upsert(entry.New("2024-03-01").WithText(section.Place, multi)); err != nil {
		t.Fatal(err)
	}
	m, err := New(svc, Options{Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatal(err)
	}

	typeText(m, "hello")
	press(m, ctrl('s'))

	got := stored(t, mem, "2024-03-01")
	if got.Section(section.Place).Text != multi {
		t.Fatalf("place was rewritten: %q", got.Section(section.Place).Text)
	}
}

func TestMultiLineSectionKeepsLineBreaks(t *testing.T) {
	mem := storetest.NewMemory()
	svc, err := app.New(mem, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Entries.Upsert(entry.New("2024-03-01").WithText(section.Gratitude, "1. sun\n2. tea")); err != nil {
		t.Fatal(err)
	}
	m, err := New(svc, Options{Now: func() time.Time { return testNow }})
	if err != nil {
		t.Fatal(err)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.state.Section != section.Gratitude {
		t.Fatalf("expected gratitude focus, got %s", m.state.Section)
	}
	press(m, tea.KeyPressMsg{Text: "!", Code: '!'})
	press(m, ctrl('s'))
	if got := stored(t, mem, "2024-03-01").Section(section.Gratitude).Text; got != "1. sun\n2. tea!" {
		t.Fatalf("line breaks lost, got %q", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	press(m, tea.KeyPressMsg{Text: "3", Code: '3'})
	press(m, ctrl('s'))
	if got := stored(t, mem, "2024-03-01").Section(section.Gratitude).Text; got != "1. sun\n2. tea!\n3" {
		t.Fatalf("enter should start a new line, got %q", got)
	}

	// up walks the lines before leaving the section
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if m.state.Section != section.Gratitude {
		t.Fatalf("up inside the text should stay, got %s", m.state.Section)
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if m.state.Section != section.Word {
		t.Fatalf("up from the first line should move to word, got %s", m.state.Section)
	}
}

func TestWideSectionsAreTaller(t *testing.T) {
	m := newTestModel(t, storetest.NewMemory())
	for _, k := range section.Keys() {
		want := 1
		if k.Glyph().Wide {
			want = wideRows
		}
		if got := m.inputs[k.Index()].Height(); got != want {
			t.Errorf("%s: height %d, want %d", k, got, want)
		}
	}
	if m.inputs[section.Gratitude.Index()].Height() == m.inputs[section.Music.Index()].Height() {
		t.Fatalf("gratitude should be taller than music")
	}
}

func TestDateNavigationStartsNewSession(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	typeText(m, "friday")
	press(m, tea.KeyPressMsg{Code: tea.KeyPgDown})

	if m.Date() != "2024-03-02" {
		t.Fatalf("expected next day, got %s", m.Date())
	}
	if m.Session().CanUndo() {
		t.Fatalf("new date should start a fresh history")
	}
	if got := stored(t, mem, "2024-03-01").Section(section.Diary).Text; got != "friday" {
		t.Fatalf("pending text should be saved before leaving, got %q", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyPgUp})
	press(m, tea.KeyPressMsg{Code: tea.KeyPgUp})
	if m.Date() != "2024-02-29" {
		t.Fatalf("expected leap day, got %s", m.Date())
	}
}

func TestGoToDatePrompt(t *testing.T) {
	m := newTestModel(t, storetest.NewMemory())

	press(m, ctrl('g'))
	if m.mode != modePrompt || m.prompt != promptDate {
		t.Fatalf("expected date prompt")
	}
	m.command.SetValue("2023-12-25")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Date() != "2023-12-25" {
		t.Fatalf("expected christmas, got %s", m.Date())
	}

	press(m, ctrl('g'))
	m.command.SetValue("not a date")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Date() != "2023-12-25" || m.Err() == nil {
		t.Fatalf("invalid date should keep the current date and report an error")
	}
}

func TestAttachAndDetachMedia(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})

	press(m, ctrl('o'))
	m.command.SetValue("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	md := stored(t, mem, "2024-03-01").Section(section.Music).Media
	if md == nil || md.Type != entry.MediaVideo {
		t.Fatalf("expected video on music, got %+v", md)
	}
	if md.Width != entry.DefaultMediaWidth || md.Height != entry.DefaultMediaHeight {
		t.Fatalf("expected default size, got %dx%d", md.Width, md.Height)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "youtube.com/embed/dQw4w9WgXcQ") {
		t.Fatalf("expected embed link in view; view=%q", view)
	}

	press(m, ctrl('x'))
	if stored(t, mem, "2024-03-01").Section(section.Music).Media != nil {
		t.Fatalf("expected media removed")
	}
	press(m, ctrl('z'))
	if stored(t, mem, "2024-03-01").Section(section.Music).Media == nil {
		t.Fatalf("undo should bring media back")
	}
}

func TestAttachLocalImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beach.gif")
	if err := os.WriteFile(path, []byte("GIF89a"), 0o600); err != nil {
		t.Fatal(err)
	}
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	press(m, ctrl('o'))
	m.command.SetValue(path)
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	md := stored(t, mem, "2024-03-01").Section(section.Diary).Media
	if md == nil || md.Type != entry.MediaImage || !strings.HasPrefix(md.URL, "data:image/gif;base64,") {
		t.Fatalf("expected inlined gif, got %+v", md)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "image (inline image/gif)") {
		t.Fatalf("expected inline summary in view; view=%q", view)
	}
}

func TestSearchOpensResult(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)
	if err := m.svc.Entries.Upsert(entry.New("2024-01-10").WithText(section.Food, "Kimchi stew")); err != nil {
		t.Fatal(err)
	}

	press(m, ctrl('f'))
	press(m, tea.KeyPressMsg{Text: "k", Code: 'k'})
	press(m, tea.KeyPressMsg{Text: "i", Code: 'i'})
	press(m, tea.KeyPressMsg{Text: "m", Code: 'm'})
	if len(m.results) != 1 {
		t.Fatalf("expected one result, got %d", len(m.results))
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "2024.01.10") {
		t.Fatalf("expected result in view; view=%q", view)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Date() != "2024-01-10" || m.mode != modeEdit {
		t.Fatalf("expected to open the result, got %s mode %d", m.Date(), m.mode)
	}
	if got := m.inputs[section.Food.Index()].Value(); got != "Kimchi stew" {
		t.Fatalf("expected food text, got %q", got)
	}
}

func TestTodoPanel(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	press(m, ctrl('t'))
	press(m, tea.KeyPressMsg{Text: "a", Code: 'a'})
	if m.mode != modePrompt || m.prompt != promptTodo {
		t.Fatalf("expected todo prompt")
	}
	m.command.SetValue("pay rent @2024.03.05")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeTodos || len(m.todos) != 1 {
		t.Fatalf("expected one todo in todo mode, got %d", len(m.todos))
	}
	if m.todos[0].DueDate != "2024.03.05" {
		t.Fatalf("unexpected due %q", m.todos[0].DueDate)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "pay rent D-4") {
		t.Fatalf("expected D-day in panel; view=%q", view)
	}

	press(m, tea.KeyPressMsg{Text: "x", Code: 'x'})
	if len(m.todos) != 0 {
		t.Fatalf("completed todo should leave the panel")
	}
	if got := m.svc.Todos.History(""); len(got) != 1 || !got[0].Completed {
		t.Fatalf("expected completed todo in history, got %+v", got)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
}

func TestWatchEventReloadsTodos(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	other, err := journal.LoadTodos(mem)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := other.Add("from elsewhere", "2024.03.01"); err != nil {
		t.Fatal(err)
	}

	m.Update(watchEventMsg{event: store.Event{Type: store.EventTodosChanged}})
	if len(m.todos) != 1 {
		t.Fatalf("expected reloaded todo, got %d", len(m.todos))
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "from elsewhere D-Day") {
		t.Fatalf("expected todo in view; view=%q", view)
	}
}

func TestWriteFailureStaysInStatus(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	mem.FailWrites = true
	typeText(m, "kept")
	press(m, ctrl('s'))

	if m.Err() == nil || !strings.HasPrefix(m.status, "ERR: ") {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if got := m.Session().Current().Section(section.Diary).Text; got != "kept" {
		t.Fatalf("memory should keep the edit, got %q", got)
	}

	mem.FailWrites = false
	typeText(m, "kept again")
	press(m, ctrl('s'))
	if m.Err() != nil {
		t.Fatalf("error should clear after a good write: %v", m.Err())
	}
}

func TestQuitCommitsPending(t *testing.T) {
	mem := storetest.NewMemory()
	m := newTestModel(t, mem)

	typeText(m, "bye")
	if cmd := press(m, ctrl('q')); cmd == nil {
		t.Fatalf("expected quit command")
	}
	if got := stored(t, mem, "2024-03-01").Section(section.Diary).Text; got != "bye" {
		t.Fatalf("quit should save pending text, got %q", got)
	}
}

func TestViewShowsSectionsAndVersion(t *testing.T) {
	m := newTestModel(t, storetest.NewMemory())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	typeText(m, "hello")
	press(m, ctrl('s'))

	view := stripANSI(m.View())
	for _, k := range section.Keys() {
		if !strings.Contains(view, k.Label()) {
			t.Fatalf("missing %s in view", k.Label())
		}
	}
	if !strings.Contains(view, "2024.03.01 Friday") {
		t.Fatalf("expected date header; view=%q", view)
	}
	if !strings.Contains(view, "version 2/2") {
		t.Fatalf("expected version counter; view=%q", view)
	}
}
