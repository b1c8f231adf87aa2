// Package key provides CLI helpers to display the section legend.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/section"
)

// Key prints the sections of an entry with their aliases.
type Key struct {
	Out io.Writer
}

// Do renders the section legend.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}

	glyphs := section.DefaultGlyphs()
	sort.Sort(section.ByOrder(glyphs))

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("  "), bold.Sprint("Section"), bold.Sprint("Meaning"), bold.Sprint("Aliases"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, string(g.Key), g.Meaning, strings.Join(g.Aliases, ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
