// Package calendar provides the runner that prints a month grid.
package calendar

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
)

// Calendar prints Month with every day that has an entry highlighted.
type Calendar struct {
	Service *app.Service
	Month   time.Time
	// Months prints this many consecutive months starting at Month.
	Months int
	Now    func() time.Time
	Out    io.Writer
}

func (n *Calendar) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not print calendar, no journal")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	month := n.Month
	if month.IsZero() {
		month = now()
	}
	month = time.Date(month.Year(), month.Month(), 1, 1, 0, 0, 0, time.Local)
	count := n.Months
	if count < 1 {
		count = 1
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	for i := 0; i < count; i++ {
		pp.PrintMonth(month, n.Service.Entries.InMonth(month), now())
		month = printers.NextMonth(month)
	}
	return nil
}
