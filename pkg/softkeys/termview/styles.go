package termview

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("212")
	Muted   = lipgloss.Color("241")
	Border  = lipgloss.Color("240")
)

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Align(lipgloss.Center)

	heldKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Align(lipgloss.Center)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	focusedFieldStyle = fieldStyle.
				Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	hintStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)
