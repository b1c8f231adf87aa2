// Package info provides the runner that reports where the journal lives and
// the health of its records.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	// Repair moves corrupt records aside so the journal can start fresh.
	Repair bool
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DIARY_CONFIG_PATH env var not set")
	}
	if f := store.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(out, "Config file:", f)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.history:", n.Config.HistoryLimit())

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	bad := color.New(color.FgRed)
	_, _ = fmt.Fprintln(out, "Records:")

	entries, err := n.Persistence.LoadEntries()
	if err != nil {
		_, _ = bad.Fprintf(out, "  entries: %v\n", err)
		if err := n.repair(out, store.RecordEntries, err); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(out, "  entries: %d\n", len(entries))
	}

	todos, err := n.Persistence.LoadTodos()
	if err != nil {
		_, _ = bad.Fprintf(out, "  todos: %v\n", err)
		if err := n.repair(out, store.RecordTodos, err); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(out, "  todos: %d\n", len(todos))
	}
	return nil
}

func (n *Info) repair(out io.Writer, r store.Record, loadErr error) error {
	if !errors.Is(loadErr, store.ErrCorrupt) {
		return nil
	}
	if !n.Repair {
		_, _ = fmt.Fprintln(out, "  run with --repair to move it aside")
		return nil
	}
	aside, err := n.Persistence.Quarantine(r)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "  moved %s to %s\n", r, aside)
	return nil
}
