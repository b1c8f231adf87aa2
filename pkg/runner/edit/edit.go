// Package edit provides the runner that launches the full-screen editor.
package edit

import (
	"context"
	"errors"
	"log"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/tui/editor"
)

// Edit opens Date, or today, in the editor.
type Edit struct {
	Service *app.Service
	Date    string
	Logger  *log.Logger
}

func (n *Edit) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no journal")
	}
	return editor.Run(n.Service, editor.Options{Date: n.Date, Logger: n.Logger})
}
