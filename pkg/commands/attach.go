package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/media"
	"tableflip.dev/diary/pkg/runner/attach"
	"tableflip.dev/diary/pkg/section"
)

func addAttach(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	mo := &options.MediaOptions{}
	var key section.Key

	cmd := &cobra.Command{
		Use:   "attach <section> <url|file>",
		Short: "Attach an image, image file or video link to a section",
		Example: `
diary attach place https://example.com/beach.jpg
diary attach music https://youtu.be/dQw4w9WgXcQ
diary attach food https://example.com/lunch.png --width 320 --height 240
diary attach food ./lunch.png
`,
		ValidArgs: options.SectionNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a section and a url or image file")
			}
			var err error
			key, err = section.ForAlias(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := oo.GetDate("")
			if err != nil {
				return err
			}
			j, err := loadJournal()
			if err != nil {
				return err
			}
			a := attach.Attach{
				Service: j.svc,
				Date:    date,
				Section: key,
				URL:     args[1],
				Video:   mo.Video || media.VideoID(args[1]) != "",
				Width:   mo.Width,
				Height:  mo.Height,
			}
			return a.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddMediaArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}

func addDetach(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var key section.Key

	cmd := &cobra.Command{
		Use:   "detach <section>",
		Short: "Remove the media from a section",
		Example: `
diary detach music
diary detach place --on yesterday
`,
		ValidArgs: options.SectionNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a section")
			}
			var err error
			key, err = section.ForAlias(args[0])
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
			d := attach.Detach{Service: j.svc, Date: date, Section: key}
			return d.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
