// Package attach provides the runners that add and remove section media.
package attach

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/media"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/section"
)

// Attach sets the media of Section on Date. A URL naming a local image file
// is stored inline as a data URL. Width and Height override the default
// display size when positive.
type Attach struct {
	Service *app.Service
	Date    string
	Section section.Key
	URL     string
	Video   bool
	Width   int
	Height  int
	Out     io.Writer
}

func (n *Attach) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not attach, no journal")
	}
	s, err := n.Service.Open(n.Date)
	if err != nil {
		return err
	}
	url, err := media.Inline(n.URL)
	if err != nil {
		return err
	}
	typ := entry.MediaImage
	if n.Video && !media.IsDataURL(url) {
		typ = entry.MediaVideo
	}
	m := entry.NewMedia(typ, url)
	if n.Width > 0 {
		m.Width = n.Width
	}
	if n.Height > 0 {
		m.Height = n.Height
	}
	if err := s.Attach(n.Section, m); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Entry(s.Current())
	return nil
}

// Detach removes the media of Section on Date.
type Detach struct {
	Service *app.Service
	Date    string
	Section section.Key
	Out     io.Writer
}

func (n *Detach) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not detach, no journal")
	}
	s, err := n.Service.Open(n.Date)
	if err != nil {
		return err
	}
	if err := s.Detach(n.Section); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Entry(s.Current())
	return nil
}
