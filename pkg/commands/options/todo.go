package options

import (
	"github.com/spf13/cobra"
)

// TodoOptions carry todo fields set by flag.
type TodoOptions struct {
	Title     string
	Due       string
	Completed bool
	Search    string
}

func AddDueArgs(cmd *cobra.Command, o *TodoOptions) {
	cmd.Flags().StringVarP(&o.Due, "due", "d", "",
		`Due date, example: --due=2024.03.01. Defaults to today.`)
}

func AddTitleArgs(cmd *cobra.Command, o *TodoOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
}

func AddTodoListArgs(cmd *cobra.Command, o *TodoOptions) {
	cmd.Flags().BoolVarP(&o.Completed, "completed", "c", false,
		"Show completed todos, most recently completed first.")
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Filter completed todos by title.")
}
