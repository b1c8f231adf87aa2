package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/store/storetest"
	"tableflip.dev/diary/pkg/todo"
)

func TestEntryStoreEmptyLoad(t *testing.T) {
	s, err := LoadEntries(storetest.NewMemory())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Entries())

	e := s.EntryFor("2024-01-01")
	assert.True(t, e.Equal(entry.New("2024-01-01")))
	assert.False(t, s.Has("2024-01-01"), "synthesizing must not store")
}

func TestEntryStoreUpsertSurvivesRestart(t *testing.T) {
	mem := storetest.NewMemory()
	s, err := LoadEntries(mem)
	require.NoError(t, err)

	e := entry.New("2024-01-01").WithText(section.Diary, "hello")
	require.NoError(t, s.Upsert(e))
	assert.Equal(t, 1, mem.Writes())

	restarted, err := LoadEntries(mem)
	require.NoError(t, err)
	require.Equal(t, 1, restarted.Len())
	got, ok := restarted.Get("2024-01-01")
	require.True(t, ok)
	assert.True(t, got.Equal(e))
}

func TestEntryStoreUpsertReplacesWholesale(t *testing.T) {
	s, err := LoadEntries(storetest.NewMemory())
	require.NoError(t, err)

	require.NoError(t, s.Upsert(entry.New("2024-01-01").WithText(section.Diary, "a").WithText(section.Food, "rice")))
	require.NoError(t, s.Upsert(entry.New("2024-01-01").WithText(section.Diary, "b")))

	got, _ := s.Get("2024-01-01")
	assert.Equal(t, "b", got.Section(section.Diary).Text)
	assert.Equal(t, "", got.Section(section.Food).Text)
	assert.Equal(t, 1, s.Len())
}

func TestEntryStoreUpsertRejectsInvalid(t *testing.T) {
	mem := storetest.NewMemory()
	s, err := LoadEntries(mem)
	require.NoError(t, err)

	require.ErrorIs(t, s.Upsert(entry.New("01/01/2024")), entry.ErrInvalidDate)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, mem.Writes())
}

func TestEntryStoreWriteFailureKeepsMemory(t *testing.T) {
	mem := storetest.NewMemory()
	s, err := LoadEntries(mem)
	require.NoError(t, err)
	mem.FailWrites = true

	err = s.Upsert(entry.New("2024-01-01").WithText(section.Diary, "kept"))
	require.ErrorIs(t, err, storetest.ErrWriteFailed)

	got, ok := s.Get("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "kept", got.Section(section.Diary).Text)
}

func TestEntryStoreCorruptLoad(t *testing.T) {
	mem := storetest.NewMemory()
	mem.SetRaw(store.RecordEntries, []byte(`{"2024-01-01":{"date":"2024-01-01","sections":{"diary":{"text":"ok"}}},"bad":{}}`))
	s, err := LoadEntries(mem)
	require.ErrorIs(t, err, store.ErrCorrupt)
	assert.Nil(t, s)
}

func TestEntryStoreQueries(t *testing.T) {
	s, err := LoadEntries(storetest.NewMemory())
	require.NoError(t, err)

	require.NoError(t, s.Upsert(entry.New("2024-01-03").WithText(section.Music, "Blue in Green")))
	require.NoError(t, s.Upsert(entry.New("2024-01-01").WithText(section.Diary, "blue skies")))
	require.NoError(t, s.Upsert(entry.New("2024-02-10").WithMedia(section.Music, entry.NewMedia(entry.MediaVideo, "https://youtu.be/x"))))
	require.NoError(t, s.Upsert(entry.New("2024-01-20")))

	assert.Equal(t, []string{"2024-02-10", "2024-01-20", "2024-01-03", "2024-01-01"}, s.Dates())
	assert.Equal(t, []string{"2024-01-03", "2024-01-01"}, dates(s.Search("BLUE")))
	assert.Empty(t, s.Search(" "))

	assert.Equal(t, []string{"2024-02-10", "2024-01-03"}, dates(s.Category(section.Music, "")))
	assert.Equal(t, []string{"2024-01-03"}, dates(s.Category(section.Music, "green")))

	since := s.Since(time.Date(2024, time.January, 3, 12, 0, 0, 0, time.Local))
	assert.Equal(t, []string{"2024-02-10", "2024-01-20", "2024-01-03"}, dates(since))

	days := s.InMonth(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, map[int]bool{1: true, 3: true, 20: true}, days)
}

func TestTodoStoreLifecycle(t *testing.T) {
	mem := storetest.NewMemory()
	s, err := LoadTodos(mem)
	require.NoError(t, err)
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })

	_, err = s.Add("  ", "")
	require.ErrorIs(t, err, todo.ErrEmptyTitle)
	assert.Equal(t, 0, mem.Writes(), "rejected add must not persist")

	a, err := s.Add("write report", "2024.05.03")
	require.NoError(t, err)
	b, err := s.Add("book flights", "")
	require.NoError(t, err)

	edited, err := s.Edit(a.ID, "write final report", "")
	require.NoError(t, err)
	assert.Equal(t, "write final report", edited.Title)

	done, err := s.Complete(b.ID[:8])
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", done.CompletedDate)

	_, err = s.Complete(b.ID)
	require.ErrorIs(t, err, todo.ErrAlreadyCompleted)

	require.Len(t, s.Active(), 1)
	require.Len(t, s.History(""), 1)

	restarted, err := LoadTodos(mem)
	require.NoError(t, err)
	assert.Equal(t, s.List(), restarted.List())

	removed, err := s.Delete(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, removed.ID)
	assert.Len(t, s.List(), 1)
}

func TestTodoStoreWriteFailureKeepsMemory(t *testing.T) {
	mem := storetest.NewMemory()
	s, err := LoadTodos(mem)
	require.NoError(t, err)
	mem.FailWrites = true

	_, err = s.Add("still here", "")
	require.ErrorIs(t, err, storetest.ErrWriteFailed)
	assert.Len(t, s.List(), 1)
}

func dates(es []entry.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Date
	}
	return out
}
