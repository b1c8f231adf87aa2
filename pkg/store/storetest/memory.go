// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/todo"
)

// ErrWriteFailed is returned by writes while Memory.FailWrites is set.
var ErrWriteFailed = errors.New("storetest: write failed")

// Memory keeps each record as the JSON bytes a real store would hold, so
// loads go through the same decoding as the diskv store.
type Memory struct {
	mu      sync.Mutex
	records map[store.Record][]byte
	writes  int

	// FailWrites makes every Save return ErrWriteFailed.
	FailWrites bool
}

var _ store.Persistence = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{records: make(map[store.Record][]byte)}
}

// SetRaw stores raw bytes for a record, e.g. to simulate corruption.
func (m *Memory) SetRaw(r store.Record, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r] = append([]byte(nil), data...)
}

// Raw returns the bytes stored for a record.
func (m *Memory) Raw(r store.Record) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.records[r]
	return b, ok
}

// Writes counts successful saves.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) LoadEntries() (map[string]entry.Entry, error) {
	b, ok := m.Raw(store.RecordEntries)
	if !ok {
		return make(map[string]entry.Entry), nil
	}
	return store.DecodeEntries(b)
}

func (m *Memory) SaveEntries(entries map[string]entry.Entry) error {
	if entries == nil {
		entries = make(map[string]entry.Entry)
	}
	return m.save(store.RecordEntries, entries)
}

func (m *Memory) LoadTodos() ([]todo.Todo, error) {
	b, ok := m.Raw(store.RecordTodos)
	if !ok {
		return []todo.Todo{}, nil
	}
	return store.DecodeTodos(b)
}

func (m *Memory) SaveTodos(todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}
	return m.save(store.RecordTodos, todos)
}

func (m *Memory) Quarantine(r store.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.records[r]
	if !ok {
		return "", nil
	}
	aside := store.Record(string(r) + ".corrupt")
	m.records[aside] = b
	delete(m.records, r)
	return string(aside), nil
}

// Watch returns a channel that is closed when ctx is done; the memory store
// never changes behind the caller's back.
func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) save(r store.Record, v interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.records[r] = b
	m.writes++
	return nil
}
