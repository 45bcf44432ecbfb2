package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/flowpomo/internal/domain"
)

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())

	ModeTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Padding(0, 1)

	ModeTabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	PhaseStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	TallyStyle = lipgloss.NewStyle().
			Foreground(ColorTally)
)

// Category list styles
var (
	CategoryCursorStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(16)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// ModeColor returns the accent color for the timer state
func ModeColor(state domain.TimerState) Color {
	if state.Flowing {
		return ColorFlow
	}
	switch state.Mode {
	case domain.ModeShortBreak:
		return ColorShortBreak
	case domain.ModeLongBreak:
		return ColorLongBreak
	default:
		return ColorFocus
	}
}

// Swatch renders a colored block for a category color
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
