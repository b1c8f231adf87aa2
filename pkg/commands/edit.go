package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	do := &options.DebugOptions{}

	cmd := &cobra.Command{
		Use:   "edit [date]",
		Short: "Open the editor for a day, with undo and redo",
		Example: `
diary edit
diary edit yesterday
diary edit 2024-02-29
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetDate(firstArg(args))
			if err != nil {
				return err
			}
			j, err := loadJournal()
			if err != nil {
				return err
			}
			logger, closer, err := do.Logger(j.cfg.BasePath())
			if err != nil {
				return err
			}
			defer closer.Close()
			e := edit.Edit{Service: j.svc, Date: date, Logger: logger}
			return e.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddDebugArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
