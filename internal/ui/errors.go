package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultErrorWidth = 80 // Before the first WindowSizeMsg
	errorPrefix       = "Error: "
	maxErrorLines     = 2
	minErrorWidth     = 10
	truncationMark    = "..."
)

// formatErrorForDisplay wraps an error to the terminal width and keeps at most
// maxErrorLines lines, ending in "..." when the message had to be cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.TrimSpace(err.Error())
	if message == "" {
		return errorPrefix + "unknown error"
	}

	width := maxWidth
	if width <= 0 {
		width = defaultErrorWidth
	}
	if width < minErrorWidth {
		width = minErrorWidth
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(errorPrefix + message)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := []rune(lines[maxErrorLines-1])
	if keep := width - len(truncationMark); len(last) > keep {
		last = last[:keep]
	}
	lines[maxErrorLines-1] = string(last) + truncationMark
	return strings.Join(lines, "\n")
}
