package commands

import (
	"errors"
	"fmt"
	"os"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/store"
)

type journal struct {
	cfg store.Config
	svc *app.Service
}

// loadJournal opens the configured store. A damaged record stops the command
// with a hint instead of being overwritten.
func loadJournal() (*journal, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := app.New(p, cfg.HistoryLimit())
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			_, _ = fmt.Fprintf(os.Stderr, "store: %v\nstore: run `diary info --repair` to move the damaged record aside\n", err)
		}
		return nil, err
	}
	return &journal{cfg: cfg, svc: svc}, nil
}
