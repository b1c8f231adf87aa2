package app

import (
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/section"
)

// View is the panel the editor is showing.
type View int

const (
	ViewEditor View = iota
	ViewSearch
	ViewTodos
)

// State is the navigation state owned by a front end. Core packages never
// read it.
type State struct {
	Date    string
	Section section.Key
	Query   string
	View    View
}

// NewState starts on today's diary section.
func NewState(now time.Time) State {
	return State{Date: entry.Today(now), Section: section.Diary}
}

// Shift moves the selected date by days, keeping the selected section.
func (s State) Shift(days int) (State, error) {
	d, err := entry.AddDays(s.Date, days)
	if err != nil {
		return s, err
	}
	s.Date = d
	return s, nil
}
