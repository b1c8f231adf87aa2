// Package show provides the runner that prints one day's entry.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Show prints the entry for Date, or an empty one if nothing is stored.
type Show struct {
	Service *app.Service
	Date    string
	JSON    bool
	Out     io.Writer
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no journal")
	}
	s, err := n.Service.Open(n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(s.Current())
	}
	pp.NewLine()
	pp.Entry(s.Current())
	return nil
}
