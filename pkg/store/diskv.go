// Package store persists the journal as two records in a diskv key-value
// directory: "entries", a JSON object of date to entry, and "todos", a JSON
// array.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/todo"
)

// Record names one of the persisted records.
type Record string

const (
	RecordEntries Record = "entries"
	RecordTodos   Record = "todos"
)

var (
	// ErrCorrupt wraps every decode failure of a stored record.
	ErrCorrupt = errors.New("store: corrupt record")
)

// Persistence defines the persistence contract for the journal. Loads of an
// absent record return an empty value; loads of an unreadable record return
// an error wrapping ErrCorrupt and no partial data.
type Persistence interface {
	LoadEntries() (map[string]entry.Entry, error)
	SaveEntries(entries map[string]entry.Entry) error
	LoadTodos() ([]todo.Todo, error)
	SaveTodos(todos []todo.Todo) error
	Quarantine(r Record) (string, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		TempDir:   filepath.Join(basePath, tempDirName),
	}), basePath: basePath}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func flatTransform(string) []string {
	return []string{}
}

func (p *persistence) read(r Record) ([]byte, bool, error) {
	if !p.d.Has(string(r)) {
		return nil, false, nil
	}
	val, err := p.d.Read(string(r))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", r, err)
	}
	return val, true, nil
}

func (p *persistence) write(r Record, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", r, err)
	}
	if err := p.d.WriteStream(string(r), bytes.NewReader(data), true); err != nil {
		return fmt.Errorf("store: write %s: %w", r, err)
	}
	return nil
}

func (p *persistence) LoadEntries() (map[string]entry.Entry, error) {
	val, ok, err := p.read(RecordEntries)
	if err != nil {
		return nil, err
	}
	if !ok {
		return make(map[string]entry.Entry), nil
	}
	return DecodeEntries(val)
}

func (p *persistence) SaveEntries(entries map[string]entry.Entry) error {
	if entries == nil {
		entries = make(map[string]entry.Entry)
	}
	return p.write(RecordEntries, entries)
}

func (p *persistence) LoadTodos() ([]todo.Todo, error) {
	val, ok, err := p.read(RecordTodos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []todo.Todo{}, nil
	}
	return DecodeTodos(val)
}

func (p *persistence) SaveTodos(todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}
	return p.write(RecordTodos, todos)
}

// Quarantine moves a record aside under a timestamped key so the next load
// starts empty. It returns the new key, or "" when the record is absent.
func (p *persistence) Quarantine(r Record) (string, error) {
	val, ok, err := p.read(r)
	if err != nil || !ok {
		return "", err
	}
	aside := fmt.Sprintf("%s.corrupt-%s", r, time.Now().UTC().Format("20060102-150405"))
	if err := p.d.Write(aside, val); err != nil {
		return "", fmt.Errorf("store: quarantine %s: %w", r, err)
	}
	if err := p.d.Erase(string(r)); err != nil {
		return "", fmt.Errorf("store: quarantine %s: %w", r, err)
	}
	return aside, nil
}

// DecodeEntries parses an entries record. Every entry is normalized to carry
// all six sections; any entry that cannot be fails the whole record.
func DecodeEntries(data []byte) (map[string]entry.Entry, error) {
	var raw map[string]entry.Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, RecordEntries, err)
	}
	out := make(map[string]entry.Entry, len(raw))
	for key, e := range raw {
		if err := e.Normalize(key); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, RecordEntries, err)
		}
		out[key] = e
	}
	return out, nil
}

// DecodeTodos parses a todos record, rejecting items that break the
// completion invariant.
func DecodeTodos(data []byte) ([]todo.Todo, error) {
	var list []todo.Todo
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, RecordTodos, err)
	}
	if list == nil {
		list = []todo.Todo{}
	}
	for _, t := range list {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, RecordTodos, err)
		}
	}
	return list, nil
}
