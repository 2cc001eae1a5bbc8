package styles

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	salmon = lipgloss.Color("#E8B4BC")
	blue   = lipgloss.Color("#3B82F6")
	gray   = lipgloss.Color("#64748B")
)

var (
	Author = lipgloss.NewStyle().Foreground(salmon).MarginLeft(2)
	Date   = lipgloss.NewStyle().Faint(true).MarginLeft(2)
	Page   = lipgloss.NewStyle().Foreground(gray).MarginRight(2)
	Slide  = lipgloss.NewStyle().Padding(1)
	Status = lipgloss.NewStyle().Padding(1)

	// Index and Heading are used when printing slides outside the TUI.
	Index   = lipgloss.NewStyle().Foreground(gray).Width(4)
	Heading = lipgloss.NewStyle().Foreground(blue).Bold(true)
	Body    = lipgloss.NewStyle().MarginLeft(4).MarginBottom(1)
)

// JoinHorizontal joins left and right, pushing right to the far edge of a
// line width cells wide.
func JoinHorizontal(left, right string, width int) string {
	length := lipgloss.Width(left + right)
	if width < length {
		return left + " " + right
	}
	padding := strings.Repeat(" ", width-length)
	return left + padding + right
}

// SelectTheme picks the glamour style for theme. Known names are used as
// is, anything else is treated as a path to a style file. An empty theme
// follows the terminal background.
func SelectTheme(theme string) glamour.TermRendererOption {
	switch theme {
	case "ascii", "notty", "dark", "light", "dracula", "pink", "tokyo-night":
		return glamour.WithStandardStyle(theme)
	case "":
		if termenv.HasDarkBackground() {
			return glamour.WithStandardStyle("dark")
		}
		return glamour.WithStandardStyle("light")
	default:
		return glamour.WithStylePath(theme)
	}
}
