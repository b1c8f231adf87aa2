// Package list provides the runner that lists recent entries.
package list

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/timeutil"
)

// List prints entries inside Window. With Section set it becomes the
// category view for that section, optionally filtered by Query.
type List struct {
	Service *app.Service
	Window  timeutil.Window
	Section section.Key
	Query   string
	JSON    bool
	Now     func() time.Time
	Out     io.Writer
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no journal")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	var found []entry.Entry
	switch {
	case n.Section != "":
		found = n.Service.Entries.Category(n.Section, n.Query)
	case n.Query != "":
		found = n.Service.Entries.Search(n.Query)
	default:
		found = n.Service.Entries.Entries()
	}
	if !n.Window.IsZero() {
		from := entry.FormatDate(n.Window.Start(now()))
		kept := found[:0]
		for _, e := range found {
			if e.Date >= from {
				kept = append(kept, e)
			}
		}
		found = kept
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		if found == nil {
			found = []entry.Entry{}
		}
		return pp.JSON(found)
	}
	title := "Entries"
	if n.Section != "" {
		title = n.Section.Label()
	}
	if !n.Window.IsZero() {
		title += " · last " + n.Window.String()
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(found), "entry")
	pp.EntryList(found, n.Section)
	return nil
}
