// Package search provides the runner for full-text search over entries.
package search

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/printers"
)

// Search prints entries where any section contains Query, newest first.
type Search struct {
	Service *app.Service
	Query   string
	JSON    bool
	Out     io.Writer
}

func (n *Search) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no journal")
	}
	if strings.TrimSpace(n.Query) == "" {
		return errors.New("search: query required")
	}
	found := n.Service.Entries.Search(n.Query)
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		if found == nil {
			found = []entry.Entry{}
		}
		return pp.JSON(found)
	}
	pp.NewLine()
	pp.TitleWithCount("Search \""+n.Query+"\"", len(found), "entry")
	pp.EntryList(found, "")
	return nil
}
