package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the editor.
type Theme struct {
	Header  HeaderTheme
	Section SectionTheme
	Todo    TodoTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// HeaderTheme styles the date line at the top of the editor.
type HeaderTheme struct {
	Date    lipgloss.Style
	Weekday lipgloss.Style
	History lipgloss.Style
}

// SectionTheme styles one framed section of the entry.
type SectionTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Media        lipgloss.Style
	Placeholder  lipgloss.Style
}

// TodoTheme styles the todo panel.
type TodoTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Overdue  lipgloss.Style
	Today    lipgloss.Style
	Upcoming lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// ModalTheme styles centered overlays such as search and help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("240")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Date:    lipgloss.NewStyle().Bold(true).Foreground(accent),
			Weekday: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			History: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Section: SectionTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(accent),
			Title:        lipgloss.NewStyle().Bold(true),
			Media:        lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			Placeholder:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Todo: TodoTheme{
			Frame:    frame,
			Title:    lipgloss.NewStyle().Bold(true),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Today:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Prompt: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
