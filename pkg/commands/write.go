package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/write"
	"tableflip.dev/diary/pkg/section"
)

func addWrite(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var appendText bool
	var key section.Key
	var text string

	long := strings.Builder{}
	long.WriteString("Set the text of one section.\n\n")
	long.WriteString("Sections and aliases:\n")
	for _, g := range section.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%s %s: %s\n", g.Symbol, g.Key, strings.Join(g.Aliases, ", ")))
	}

	cmd := &cobra.Command{
		Use:   "write <section> <text...>",
		Short: "Write the text of a section",
		Long:  long.String(),
		Example: `
diary write diary had a quiet day
diary write music "Clair de Lune" --on yesterday
diary write gratitude --append sunny weather
`,
		ValidArgs: options.SectionNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a section and some text")
			}
			var err error
			key, err = section.ForAlias(args[0])
			text = strings.Join(args[1:], " ")
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetDate("")
			if err != nil {
				return err
			}
			j, err := loadJournal()
			if err != nil {
				return err
			}
			w := write.Write{Service: j.svc, Date: date, Section: key, Text: text, Append: appendText}
			return w.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVarP(&appendText, "append", "a", false, "Add a line to the section instead of replacing it.")
	topLevel.AddCommand(cmd)
}
