package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/section"
)

// Report prints a window summary: entries written, how often each section
// was filled and the todos completed.
func (pp *PrettyPrint) Report(res app.ReportResult, label string) {
	since := res.Since.Local().Format("2006.01.02")
	until := res.Until.Local().Format("2006.01.02")
	pp.Title(fmt.Sprintf("Last %s (%s → %s)", label, since, until))

	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%d entries written\n", len(res.Entries))
	for _, k := range section.Keys() {
		if n := res.Filled[k]; n > 0 {
			g := k.Glyph()
			_, _ = fmt.Fprintf(pp.out(), "  %s %-10s %d\n", g.Symbol, g.Label, n)
		}
	}
	pp.NewLine()
	pp.EntryList(res.Entries, "")

	pp.TitleWithCount("Completed", len(res.Completed), "todo")
	pp.Todos(res.Completed, res.Until)
	pp.TitleWithCount("Open", len(res.Open), "todo")
	pp.Todos(res.Open, res.Until)
}
