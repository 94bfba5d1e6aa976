package components

import (
	"github.com/theirongolddev/pdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest status message on the right.
func RenderStatusBar(width int, message string, isErr bool) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	msgColor := t.Green
	if isErr {
		msgColor = t.Red
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface)

	left := hintStyle.Render(" ") +
		keyStyle.Render("i") + hintStyle.Render(" inputs  ") +
		keyStyle.Render("e") + hintStyle.Render(" export pdf  ") +
		keyStyle.Render("?") + hintStyle.Render(" help  ") +
		keyStyle.Render("q") + hintStyle.Render(" quit")

	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough room: drop the hints, keep the message.
		left = ""
		gap = width - lipgloss.Width(right)
		if gap < 0 {
			gap = 0
		}
	}

	fill := lipgloss.NewStyle().Background(t.Surface).Width(gap).Render("")
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(left + fill + right)
}
