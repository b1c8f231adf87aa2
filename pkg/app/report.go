package app

import (
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/todo"
)

// ReportResult summarizes journal activity for a window of days.
type ReportResult struct {
	Since     time.Time
	Until     time.Time
	Entries   []entry.Entry
	Filled    map[section.Key]int
	Completed []todo.Todo
	Open      []todo.Todo
}

// Report returns entries dated inside [since, until], how many of them filled
// each section, todos completed in the window and todos still open.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	from, to := entry.FormatDate(since), entry.FormatDate(until)

	res := ReportResult{
		Since:  since,
		Until:  until,
		Filled: make(map[section.Key]int, len(section.Keys())),
	}
	for _, e := range s.Entries.Since(since) {
		if e.Date > to || e.Date < from || e.IsEmpty() {
			continue
		}
		res.Entries = append(res.Entries, e)
		for _, k := range section.Keys() {
			if !e.Section(k).IsEmpty() {
				res.Filled[k]++
			}
		}
	}
	for _, t := range s.Todos.History("") {
		at, ok := t.CompletedAt()
		if !ok || at.Before(since) || at.After(until) {
			continue
		}
		res.Completed = append(res.Completed, t)
	}
	res.Open = s.Todos.Active()
	return res
}
