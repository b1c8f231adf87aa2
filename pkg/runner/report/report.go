// Package report provides the runner that summarizes a window of days.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/timeutil"
)

// Report prints what was written and completed inside Window.
type Report struct {
	Service *app.Service
	Window  timeutil.Window
	JSON    bool
	Now     func() time.Time
	Out     io.Writer
}

func (n *Report) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no journal")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	until := now()
	res := n.Service.Report(n.Window.Start(until), until)

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(res)
	}
	pp.NewLine()
	pp.Report(res, n.Window.String())
	return nil
}
