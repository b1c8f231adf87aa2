package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/todo"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list",
		Example: `
diary todo add pay rent --due 2024.03.05
diary todo ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTodoAdd(cmd)
	addTodoEdit(cmd)
	addTodoDone(cmd)
	addTodoRemove(cmd)
	addTodoList(cmd)

	topLevel.AddCommand(cmd)
}

func requireID(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires a todo id or a unique prefix of one")
	}
	return nil
}

func addTodoAdd(parent *cobra.Command) {
	to := &options.TodoOptions{}

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a todo, due today unless --due is set",
		Example: `
diary todo add call mom
diary todo add renew passport --due 2024.06.01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return err
			}
			a := todo.Add{Service: j.svc, Title: to.Title, Due: to.Due}
			return a.Do(context.Background())
		},
	}

	options.AddDueArgs(cmd, to)
	parent.AddCommand(cmd)
}

func addTodoEdit(parent *cobra.Command) {
	to := &options.TodoOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or due date of an open todo",
		Example: `
diary todo edit 1f3a --due 2024.03.09
diary todo edit 1f3a --title "call mom and dad"
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return err
			}
			e := todo.Edit{Service: j.svc, ID: args[0], Title: to.Title, Due: to.Due}
			return e.Do(context.Background())
		},
	}

	options.AddTitleArgs(cmd, to)
	options.AddDueArgs(cmd, to)
	parent.AddCommand(cmd)
}

func addTodoDone(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete", "x"},
		Short:   "Mark a todo completed",
		Example: `
diary todo done 1f3a
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return err
			}
			c := todo.Complete{Service: j.svc, ID: args[0]}
			return c.Do(context.Background())
		},
	}

	parent.AddCommand(cmd)
}

func addTodoRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo, open or completed",
		Example: `
diary todo rm 1f3a
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return err
			}
			r := todo.Remove{Service: j.svc, ID: args[0]}
			return r.Do(context.Background())
		},
	}

	parent.AddCommand(cmd)
}

func addTodoList(parent *cobra.Command) {
	to := &options.TodoOptions{}
	io := &options.IDOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List open todos, or completed ones with --completed",
		Example: `
diary todo ls
diary todo ls --completed --search rent
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			l := todo.List{
				Service:   j.svc,
				Completed: to.Completed,
				Query:     to.Search,
				ShowID:    io.ShowID,
				JSON:      out.JSON,
			}
			return out.HandleError(l.Do(context.Background()))
		},
	}

	options.AddTodoListArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, out)
	parent.AddCommand(cmd)
}
