// Package write provides the runner that sets the text of one section.
package write

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/section"
)

// Write replaces, or with Append extends, the text of Section on Date.
type Write struct {
	Service *app.Service
	Date    string
	Section section.Key
	Text    string
	Append  bool
	Out     io.Writer
}

func (n *Write) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no journal")
	}
	s, err := n.Service.Open(n.Date)
	if err != nil {
		return err
	}
	text := n.Text
	if n.Append {
		if prev := s.Current().Section(n.Section).Text; strings.TrimSpace(prev) != "" {
			text = prev + "\n" + text
		}
	}
	if err := s.SetText(n.Section, text); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Entry(s.Current())
	return nil
}
