// Package journal holds the in-memory journal state and keeps it flushed to
// a store.Persistence after every mutation. Stores are driven from a single
// goroutine; they do no locking.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store"
)

var ErrNoPersistence = errors.New("journal: no persistence configured")

// EntryStore owns the authoritative date to entry mapping.
type EntryStore struct {
	p       store.Persistence
	entries map[string]entry.Entry
}

// LoadEntries reads every entry from p. A corrupt record fails the load and
// nothing is kept.
func LoadEntries(p store.Persistence) (*EntryStore, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	entries, err := p.LoadEntries()
	if err != nil {
		return nil, err
	}
	return &EntryStore{p: p, entries: entries}, nil
}

// Reload replaces the in-memory mapping with what is persisted. On error the
// current mapping is kept.
func (s *EntryStore) Reload() error {
	entries, err := s.p.LoadEntries()
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// Upsert replaces the entry for e.Date and flushes the full mapping. The
// in-memory mapping is updated even when the flush fails; the error is
// returned for the caller to report.
func (s *EntryStore) Upsert(e entry.Entry) error {
	e = e.Clone()
	if err := e.Normalize(""); err != nil {
		return err
	}
	s.entries[e.Date] = e
	if err := s.p.SaveEntries(s.entries); err != nil {
		return fmt.Errorf("journal: flush entries: %w", err)
	}
	return nil
}

// Get returns the stored entry for date.
func (s *EntryStore) Get(date string) (entry.Entry, bool) {
	e, ok := s.entries[date]
	if !ok {
		return entry.Entry{}, false
	}
	return e.Clone(), true
}

// EntryFor returns the stored entry for date, or a new empty one.
func (s *EntryStore) EntryFor(date string) entry.Entry {
	if e, ok := s.Get(date); ok {
		return e
	}
	return entry.New(date)
}

// Has reports whether an entry is stored for date.
func (s *EntryStore) Has(date string) bool {
	_, ok := s.entries[date]
	return ok
}

func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Dates returns stored date keys, newest first.
func (s *EntryStore) Dates() []string {
	dates := make([]string, 0, len(s.entries))
	for d := range s.entries {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// Entries returns copies of every stored entry, newest first.
func (s *EntryStore) Entries() []entry.Entry {
	return s.filter(func(entry.Entry) bool { return true })
}

// Search returns entries where any section text contains query, newest
// first. A blank query matches nothing.
func (s *EntryStore) Search(query string) []entry.Entry {
	return s.filter(func(e entry.Entry) bool { return e.Contains(query) })
}

// Category returns entries whose section k has content, newest first. A
// non-blank query further restricts to entries whose section text contains
// it.
func (s *EntryStore) Category(k section.Key, query string) []entry.Entry {
	blank := isBlank(query)
	return s.filter(func(e entry.Entry) bool {
		if e.Section(k).IsEmpty() {
			return false
		}
		return blank || e.SectionContains(k, query)
	})
}

// Since returns entries dated on or after from, newest first.
func (s *EntryStore) Since(from time.Time) []entry.Entry {
	key := entry.FormatDate(from)
	return s.filter(func(e entry.Entry) bool { return e.Date >= key })
}

// InMonth returns the set of days in month that have a stored entry.
func (s *EntryStore) InMonth(month time.Time) map[int]bool {
	prefix := month.Format("2006-01-")
	days := make(map[int]bool)
	for d := range s.entries {
		if strings.HasPrefix(d, prefix) {
			t, err := entry.ParseDate(d)
			if err == nil {
				days[t.Day()] = true
			}
		}
	}
	return days
}

func (s *EntryStore) filter(keep func(entry.Entry) bool) []entry.Entry {
	out := make([]entry.Entry, 0)
	for _, d := range s.Dates() {
		e := s.entries[d]
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}
