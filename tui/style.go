package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/adventurecore/types"
)

// Chrome styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleQuestion = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// narrationStyles maps the engine's line styles to terminal rendering.
// The engine tags every line; the TUI never guesses from text.
var narrationStyles = map[types.Style]lipgloss.Style{
	types.StyleNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	types.StyleWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	types.StyleDanger:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	types.StyleSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	types.StyleSpecial:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	types.StyleSpecial2: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	types.StyleNoSpace:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	types.StyleEmphasis: lipgloss.NewStyle().Bold(true),
}

// renderNarration styles one narration line.
func renderNarration(text string, style types.Style) string {
	if s, ok := narrationStyles[style]; ok {
		return s.Render(text)
	}
	return narrationStyles[types.StyleNormal].Render(text)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
