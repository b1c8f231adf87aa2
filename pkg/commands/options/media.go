package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/entry"
)

// MediaOptions describe an attachment.
type MediaOptions struct {
	Video  bool
	Width  int
	Height int
}

func AddMediaArgs(cmd *cobra.Command, o *MediaOptions) {
	cmd.Flags().BoolVar(&o.Video, "video", false,
		"Attach a video link instead of an image. Recognized video links are detected automatically.")
	cmd.Flags().IntVar(&o.Width, "width", entry.DefaultMediaWidth,
		"Display width.")
	cmd.Flags().IntVar(&o.Height, "height", entry.DefaultMediaHeight,
		"Display height.")
}
