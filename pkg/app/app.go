// Package app ties the journal stores to editing sessions so the CLI and the
// TUI share one set of operations.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/history"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store"
)

var (
	ErrNoMedia = errors.New("app: section has no media")
	ErrNoURL   = errors.New("app: media url required")
)

// Service provides high-level operations over entries and todos.
type Service struct {
	Persistence  store.Persistence
	Entries      *journal.EntryStore
	Todos        *journal.TodoStore
	HistoryLimit int
}

// New loads both stores from p. A corrupt record fails the load; callers
// decide whether to quarantine it and retry.
func New(p store.Persistence, historyLimit int) (*Service, error) {
	entries, err := journal.LoadEntries(p)
	if err != nil {
		return nil, err
	}
	todos, err := journal.LoadTodos(p)
	if err != nil {
		return nil, err
	}
	return &Service{
		Persistence:  p,
		Entries:      entries,
		Todos:        todos,
		HistoryLimit: historyLimit,
	}, nil
}

// Open starts an editing session for date, seeded with the stored entry or a
// new empty one.
func (s *Service) Open(date string) (*Session, error) {
	if !entry.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", entry.ErrInvalidDate, date)
	}
	return &Session{
		entries: s.Entries,
		history: history.New(s.Entries.EntryFor(date), history.WithLimit(s.HistoryLimit)),
	}, nil
}

// Reload rereads both records, e.g. after another process wrote them.
func (s *Service) Reload(ev store.Event) error {
	switch ev.Type {
	case store.EventEntriesChanged:
		return s.Entries.Reload()
	case store.EventTodosChanged:
		return s.Todos.Reload()
	default:
		if err := s.Entries.Reload(); err != nil {
			return err
		}
		return s.Todos.Reload()
	}
}

// Watch reports writes made to the records by other processes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Session edits one entry with undo/redo. Every change to the current version,
// including undo and redo, is mirrored into the entry store and flushed.
type Session struct {
	entries *journal.EntryStore
	history *history.Engine
}

// Current is the entry the editor shows.
func (s *Session) Current() entry.Entry {
	return s.history.Current()
}

// Date is the date being edited.
func (s *Session) Date() string {
	return s.history.Current().Date
}

func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// History exposes the underlying engine, read-only by convention.
func (s *Session) History() *history.Engine {
	return s.history
}

// Commit records next as a new version. next must be for the session's date.
func (s *Session) Commit(next entry.Entry) error {
	if next.Date != s.Date() {
		return fmt.Errorf("app: session for %s cannot commit %s", s.Date(), next.Date)
	}
	next = next.Clone()
	if err := next.Normalize(""); err != nil {
		return err
	}
	s.history.Commit(next)
	return s.mirror()
}

// SetText commits a version with the text of section k replaced.
func (s *Session) SetText(k section.Key, text string) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", entry.ErrUnknownSection, k)
	}
	return s.Commit(s.Current().WithText(k, text))
}

// Attach commits a version with m attached to section k, replacing any
// previous media.
func (s *Session) Attach(k section.Key, m *entry.Media) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", entry.ErrUnknownSection, k)
	}
	if m == nil || strings.TrimSpace(m.URL) == "" {
		return ErrNoURL
	}
	return s.Commit(s.Current().WithMedia(k, m))
}

// Detach commits a version with the media of section k removed.
func (s *Session) Detach(k section.Key) error {
	if s.Current().Section(k).Media == nil {
		return fmt.Errorf("%w: %s", ErrNoMedia, k)
	}
	return s.Commit(s.Current().WithMedia(k, nil))
}

// Undo steps back one version. At the oldest version it does nothing and
// reports false.
func (s *Session) Undo() (bool, error) {
	if _, ok := s.history.Undo(); !ok {
		return false, nil
	}
	return true, s.mirror()
}

// Redo steps forward one version. At the newest version it does nothing and
// reports false.
func (s *Session) Redo() (bool, error) {
	if _, ok := s.history.Redo(); !ok {
		return false, nil
	}
	return true, s.mirror()
}

func (s *Session) mirror() error {
	return s.entries.Upsert(s.history.Current())
}
