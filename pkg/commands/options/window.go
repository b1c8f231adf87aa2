package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/timeutil"
)

// WindowOptions bounds list and report commands to recent days.
type WindowOptions struct {
	Window string
	All    bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, def string) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", def,
		"Time window to include, for example 3d, 2w, 1mo.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Ignore the window and include every entry.")
}

// GetWindow parses the flag. The zero window means no bound.
func (o *WindowOptions) GetWindow() (timeutil.Window, error) {
	if o.All {
		return timeutil.Window{}, nil
	}
	return timeutil.ParseWindow(o.Window)
}
