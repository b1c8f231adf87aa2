package journal

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/todo"
)

// TodoStore owns the ordered todo list. ReplaceAll is the only persistence
// primitive; the helpers build a new list with pkg/todo and replace.
type TodoStore struct {
	p     store.Persistence
	todos []todo.Todo
	now   func() time.Time
}

// LoadTodos reads the todo list from p.
func LoadTodos(p store.Persistence) (*TodoStore, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	todos, err := p.LoadTodos()
	if err != nil {
		return nil, err
	}
	return &TodoStore{p: p, todos: todos, now: time.Now}, nil
}

// SetClock overrides time.Now, for tests.
func (s *TodoStore) SetClock(now func() time.Time) {
	s.now = now
}

// Reload replaces the in-memory list with what is persisted.
func (s *TodoStore) Reload() error {
	todos, err := s.p.LoadTodos()
	if err != nil {
		return err
	}
	s.todos = todos
	return nil
}

// List returns a copy of the list in insertion order.
func (s *TodoStore) List() []todo.Todo {
	out := make([]todo.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// ReplaceAll makes list the todo list and flushes it. Memory is updated even
// when the flush fails.
func (s *TodoStore) ReplaceAll(list []todo.Todo) error {
	next := make([]todo.Todo, len(list))
	copy(next, list)
	s.todos = next
	if err := s.p.SaveTodos(s.todos); err != nil {
		return fmt.Errorf("journal: flush todos: %w", err)
	}
	return nil
}

// Add creates a todo. An empty title is rejected before anything is stored.
func (s *TodoStore) Add(title, due string) (todo.Todo, error) {
	item, err := todo.New(title, due, s.now())
	if err != nil {
		return todo.Todo{}, err
	}
	next, err := todo.Add(s.todos, item)
	if err != nil {
		return todo.Todo{}, err
	}
	return item, s.ReplaceAll(next)
}

// Edit changes title and due date of an active todo. id may be a unique
// prefix.
func (s *TodoStore) Edit(id, title, due string) (todo.Todo, error) {
	id, err := todo.Resolve(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	next, err := todo.Edit(s.todos, id, title, due)
	if err != nil {
		return todo.Todo{}, err
	}
	return s.replaceAndFind(next, id)
}

// Complete marks an active todo completed now.
func (s *TodoStore) Complete(id string) (todo.Todo, error) {
	id, err := todo.Resolve(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	next, err := todo.Complete(s.todos, id, s.now())
	if err != nil {
		return todo.Todo{}, err
	}
	return s.replaceAndFind(next, id)
}

// Delete removes a todo from either view.
func (s *TodoStore) Delete(id string) (todo.Todo, error) {
	id, err := todo.Resolve(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	item, _ := todo.Find(s.todos, id)
	next, err := todo.Delete(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	return item, s.ReplaceAll(next)
}

// Active returns incomplete todos in insertion order.
func (s *TodoStore) Active() []todo.Todo {
	return todo.Active(s.todos)
}

// History returns completed todos, newest completion first.
func (s *TodoStore) History(query string) []todo.Todo {
	return todo.History(s.todos, query)
}

func (s *TodoStore) replaceAndFind(next []todo.Todo, id string) (todo.Todo, error) {
	item, _ := todo.Find(next, id)
	return item, s.ReplaceAll(next)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
