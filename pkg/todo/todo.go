// Package todo models dated todo items and the list transforms applied to
// them. Every mutation returns a new list; persistence replaces the whole list.
package todo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("todo: title required")
	ErrInvalidDueDate   = errors.New("todo: invalid due date")
	ErrNotFound         = errors.New("todo: not found")
	ErrAlreadyCompleted = errors.New("todo: already completed")
)

const (
	// LayoutDue is the display form of a due date.
	LayoutDue = "2006.01.02"
	// LayoutCompleted matches the millisecond UTC timestamps already in
	// stored data.
	LayoutCompleted = "2006-01-02T15:04:05.000Z07:00"
)

// Todo is one item in the todo list. CompletedDate is set iff Completed.
type Todo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	DueDate       string `json:"dueDate"`
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// New validates input and returns an incomplete todo with a fresh id. An
// empty due date defaults to the local date of now.
func New(title, due string, now time.Time) (Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Todo{}, ErrEmptyTitle
	}
	if strings.TrimSpace(due) == "" {
		due = FormatDue(now)
	}
	d, err := NormalizeDue(due)
	if err != nil {
		return Todo{}, err
	}
	return Todo{
		ID:      uuid.NewString(),
		Title:   title,
		DueDate: d,
	}, nil
}

// FormatDue renders the local date of t as a due date.
func FormatDue(t time.Time) string {
	return t.Local().Format(LayoutDue)
}

// ParseDue parses a due date as local midnight.
func ParseDue(v string) (time.Time, error) {
	return time.ParseInLocation(LayoutDue, v, time.Local)
}

// NormalizeDue accepts YYYY.MM.DD or YYYY-MM-DD and returns YYYY.MM.DD.
func NormalizeDue(v string) (string, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, "-", "."))
	t, err := ParseDue(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDueDate, v)
	}
	return t.Format(LayoutDue), nil
}

// Validate checks the completion invariant.
func (t Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.Completed != (t.CompletedDate != "") {
		return fmt.Errorf("todo: %s: completed=%v with completedDate %q", t.ID, t.Completed, t.CompletedDate)
	}
	return nil
}

// CompletedAt returns when t was completed.
func (t Todo) CompletedAt() (time.Time, bool) {
	if !t.Completed || t.CompletedDate == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, t.CompletedDate)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// DDay labels the due date relative to now.
func (t Todo) DDay(now time.Time) string {
	due, err := ParseDue(t.DueDate)
	if err != nil {
		return ""
	}
	return DDay(due, now)
}

// Add appends item, keeping insertion order.
func Add(list []Todo, item Todo) ([]Todo, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	out := make([]Todo, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item), nil
}

// Edit changes title and due date of an active todo. Empty arguments keep
// the current value.
func Edit(list []Todo, id, title, due string) ([]Todo, error) {
	i := index(list, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if list[i].Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}
	out := clone(list)
	if title = strings.TrimSpace(title); title != "" {
		out[i].Title = title
	}
	if strings.TrimSpace(due) != "" {
		d, err := NormalizeDue(due)
		if err != nil {
			return nil, err
		}
		out[i].DueDate = d
	}
	return out, nil
}

// Complete marks an active todo completed at now. Completion is final.
func Complete(list []Todo, id string, now time.Time) ([]Todo, error) {
	i := index(list, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if list[i].Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}
	out := clone(list)
	out[i].Completed = true
	out[i].CompletedDate = now.UTC().Format(LayoutCompleted)
	return out, nil
}

// Delete removes a todo from either view.
func Delete(list []Todo, id string) ([]Todo, error) {
	i := index(list, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	out := make([]Todo, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// Find returns the todo with id. A unique id prefix also matches.
func Find(list []Todo, id string) (Todo, bool) {
	i := index(list, id)
	if i < 0 {
		return Todo{}, false
	}
	return list[i], true
}

// Resolve expands a unique id prefix to the full id.
func Resolve(list []Todo, id string) (string, error) {
	i := index(list, id)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return list[i].ID, nil
}

// Active returns incomplete todos in insertion order.
func Active(list []Todo) []Todo {
	out := make([]Todo, 0, len(list))
	for _, t := range list {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// History returns completed todos, most recently completed first, filtered
// by a case-insensitive title query.
func History(list []Todo, query string) []Todo {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Todo, 0, len(list))
	for _, t := range list {
		if !t.Completed {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedDate > out[j].CompletedDate
	})
	return out
}

func index(list []Todo, id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	match := -1
	for i, t := range list {
		if strings.HasPrefix(t.ID, id) {
			if match >= 0 {
				return -1
			}
			match = i
		}
	}
	return match
}

func clone(list []Todo) []Todo {
	out := make([]Todo, len(list))
	copy(out, list)
	return out
}
