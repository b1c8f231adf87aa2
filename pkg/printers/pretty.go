package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/media"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/todo"
)

// DefaultWidth is the column budget for wrapped text and previews.
const DefaultWidth = 80

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out   io.Writer
	Width int
	// ShowID prints full todo ids instead of the short prefix.
	ShowID bool
}

const shortID = 8

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Entry prints every section of e in display order. Empty sections are shown
// faint so the shape of the day stays visible.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	pp.Title(entry.Display(e.Date))

	label := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)
	m := color.New(color.FgHiCyan)

	for _, k := range section.Keys() {
		g := k.Glyph()
		s := e.Section(k)
		_, _ = label.Fprintf(pp.out(), "%s %s\n", g.Symbol, g.Label)
		if s.IsEmpty() {
			_, _ = faint.Fprintln(pp.out(), "  -")
			continue
		}
		if strings.TrimSpace(s.Text) != "" {
			text := wordwrap.String(s.Text, pp.width()-2)
			_, _ = fmt.Fprintln(pp.out(), indent.String(text, 2))
		}
		if s.Media != nil {
			_, _ = m.Fprintf(pp.out(), "  [%s]\n", media.Describe(s.Media))
		}
	}
	pp.NewLine()
}

// EntryList prints one line per entry: its date and a preview. When k is a
// valid section the preview comes from that section only.
func (pp *PrettyPrint) EntryList(entries []entry.Entry, k section.Key) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	d := color.New(color.FgHiYellow)
	for _, e := range entries {
		date := entry.Display(e.Date)
		_, _ = d.Fprint(pp.out(), date)
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", pp.preview(e, k, len(date)+2))
	}
	pp.NewLine()
}

func (pp *PrettyPrint) preview(e entry.Entry, k section.Key, used int) string {
	var parts []string
	keys := section.Keys()
	if k.Valid() {
		keys = []section.Key{k}
	}
	for _, key := range keys {
		s := e.Section(key)
		if s.IsEmpty() {
			continue
		}
		text := strings.Join(strings.Fields(s.Text), " ")
		if text == "" {
			text = "[" + string(s.Media.Type) + "]"
		}
		if k.Valid() {
			parts = append(parts, text)
		} else {
			parts = append(parts, key.Glyph().Symbol+" "+text)
		}
	}
	w := pp.width() - used
	if w < 10 {
		w = 10
	}
	return truncate.StringWithTail(strings.Join(parts, "  "), uint(w), "…")
}

// Todos prints active todos with their D-day, or completed ones with the
// completion date.
func (pp *PrettyPrint) Todos(list []todo.Todo, now time.Time) {
	if len(list) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	late := color.New(color.FgRed, color.Bold)
	soon := color.New(color.FgGreen)
	t := color.New()

	for _, item := range list {
		id := item.ID
		if !pp.ShowID && len(id) > shortID {
			id = id[:shortID]
		}
		_, _ = y.Fprintf(pp.out(), "%s  ", id)
		if item.Completed {
			_, _ = done.Fprint(pp.out(), item.Title)
			at := ""
			if c, ok := item.CompletedAt(); ok {
				at = c.Local().Format("2006.01.02 15:04")
			}
			_, _ = t.Fprintf(pp.out(), "  ✓ %s\n", at)
			continue
		}
		dday := item.DDay(now)
		printer := soon
		if strings.HasPrefix(dday, "D+") {
			printer = late
		}
		_, _ = t.Fprintf(pp.out(), "%s  %s ", item.Title, item.DueDate)
		_, _ = printer.Fprintln(pp.out(), dday)
	}
	pp.NewLine()
}
