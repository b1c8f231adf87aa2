// Package todo provides the runners behind the todo subcommands.
package todo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/todo"
)

var errNoJournal = errors.New("can not manage todos, no journal")

// Add creates a todo. Due defaults to today.
type Add struct {
	Service *app.Service
	Title   string
	Due     string
	Out     io.Writer
}

func (n *Add) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoJournal
	}
	item, err := n.Service.Todos.Add(n.Title, n.Due)
	if err != nil {
		return err
	}
	return done(n.Out, "added", item)
}

// Edit changes the title or due date of an active todo. Empty fields keep
// their current value.
type Edit struct {
	Service *app.Service
	ID      string
	Title   string
	Due     string
	Out     io.Writer
}

func (n *Edit) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoJournal
	}
	item, err := n.Service.Todos.Edit(n.ID, n.Title, n.Due)
	if err != nil {
		return err
	}
	return done(n.Out, "updated", item)
}

// Complete marks a todo done.
type Complete struct {
	Service *app.Service
	ID      string
	Out     io.Writer
}

func (n *Complete) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoJournal
	}
	item, err := n.Service.Todos.Complete(n.ID)
	if err != nil {
		return err
	}
	return done(n.Out, "completed", item)
}

// Remove deletes a todo, active or completed.
type Remove struct {
	Service *app.Service
	ID      string
	Out     io.Writer
}

func (n *Remove) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoJournal
	}
	item, err := n.Service.Todos.Delete(n.ID)
	if err != nil {
		return err
	}
	return done(n.Out, "removed", item)
}

// List prints active todos, or with Completed the completion history
// filtered by Query.
type List struct {
	Service   *app.Service
	Completed bool
	Query     string
	ShowID    bool
	JSON      bool
	Now       func() time.Time
	Out       io.Writer
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoJournal
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	title := "Todo"
	items := n.Service.Todos.Active()
	if n.Completed {
		title = "Done"
		items = n.Service.Todos.History(n.Query)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	if n.JSON {
		if items == nil {
			items = []todo.Todo{}
		}
		return pp.JSON(items)
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(items), "todo")
	pp.Todos(items, now())
	return nil
}

func done(out io.Writer, verb string, item todo.Todo) error {
	if out == nil {
		out = color.Output
	}
	f := color.New(color.Faint)
	_, err := f.Fprintf(out, "%s %s: %s\n", verb, item.ID, item.Title)
	if err != nil {
		return fmt.Errorf("todo: %w", err)
	}
	return nil
}
