// Package history keeps the bounded undo/redo log for one entry being
// edited.
//
// The log is a pointer walking a capped append-only sequence of entry
// versions. Commit is the only operation that changes the sequence; Undo and
// Redo only move the pointer. A commit after an undo discards every version
// beyond the pointer, and once the sequence is full the oldest version is
// dropped.
//
// An Engine is owned by a single editing session and is not safe for
// concurrent use.
package history

import (
	"tableflip.dev/diary/pkg/entry"
)

// DefaultLimit is the maximum number of versions retained.
const DefaultLimit = 50

// Option configures an Engine.
type Option func(*Engine)

// WithLimit overrides DefaultLimit. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// Engine is a ring-indexed buffer of entry versions plus a pointer into it.
// Invariant: 0 <= pointer < length <= limit.
type Engine struct {
	ring    []entry.Entry
	start   int
	length  int
	pointer int
	limit   int
}

// New starts a session whose only version is initial.
func New(initial entry.Entry, opts ...Option) *Engine {
	e := &Engine{limit: DefaultLimit}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset(initial)
	return e
}

// Reset discards all versions and starts over from initial.
func (e *Engine) Reset(initial entry.Entry) {
	if e.limit <= 0 {
		e.limit = DefaultLimit
	}
	e.ring = make([]entry.Entry, e.limit)
	e.start = 0
	e.length = 1
	e.pointer = 0
	e.ring[0] = initial.Clone()
}

// Commit records next as the newest version and makes it current. Versions
// after the current one are discarded. Every call takes one slot, even when
// next equals the current version.
func (e *Engine) Commit(next entry.Entry) {
	e.length = e.pointer + 1
	if e.length == e.limit {
		e.ring[e.start] = entry.Entry{}
		e.start = e.slot(1)
		e.length--
	}
	e.ring[e.slot(e.length)] = next.Clone()
	e.length++
	e.pointer = e.length - 1
}

// Undo steps back one version. It reports false and changes nothing when the
// current version is the oldest.
func (e *Engine) Undo() (entry.Entry, bool) {
	if !e.CanUndo() {
		return e.Current(), false
	}
	e.pointer--
	return e.Current(), true
}

// Redo steps forward one version. It reports false and changes nothing when
// the current version is the newest.
func (e *Engine) Redo() (entry.Entry, bool) {
	if !e.CanRedo() {
		return e.Current(), false
	}
	e.pointer++
	return e.Current(), true
}

func (e *Engine) CanUndo() bool {
	return e.pointer > 0
}

func (e *Engine) CanRedo() bool {
	return e.pointer < e.length-1
}

// Current returns a copy of the version at the pointer.
func (e *Engine) Current() entry.Entry {
	return e.ring[e.slot(e.pointer)].Clone()
}

// Len is the number of retained versions.
func (e *Engine) Len() int {
	return e.length
}

// Position is the zero-based index of the current version.
func (e *Engine) Position() int {
	return e.pointer
}

// Limit is the maximum number of retained versions.
func (e *Engine) Limit() int {
	return e.limit
}

// Versions returns copies of the retained versions, oldest first.
func (e *Engine) Versions() []entry.Entry {
	out := make([]entry.Entry, e.length)
	for i := range out {
		out[i] = e.ring[e.slot(i)].Clone()
	}
	return out
}

func (e *Engine) slot(i int) int {
	return (e.start + i) % e.limit
}
