package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/edit"
)

func New() *cobra.Command {
	do := &options.DebugOptions{}

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("A diary and todo list for the terminal. Six sections a day, with undo."),
		Long: base.Wrap80("diary keeps one entry per day with six sections: diary, music, place, food, word " +
			"and gratitude. Run it without arguments in a terminal to open today's entry in the editor."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return cmd.Help()
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
			e := edit.Edit{Service: j.svc, Logger: logger}
			return e.Do(context.Background())
		},
	}
	options.AddDebugArgs(cmd, do)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addEdit(topLevel)
	addShow(topLevel)
	addWrite(topLevel)
	addAttach(topLevel)
	addDetach(topLevel)
	addList(topLevel)
	addSearch(topLevel)
	addCalendar(topLevel)
	addReport(topLevel)
	addTodo(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
