package memos

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memo/internal/memos/data"
	"memo/internal/tui/theme"
)

// lightness above which card text switches to a dark foreground
const lightCardThreshold = 0.75

var (
	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(theme.BorderFocused)

	cardStyle = lipgloss.NewStyle().PaddingLeft(1)
)

// CardForeground picks a readable text color for the memo's background.
func CardForeground(m data.Memo) lipgloss.Color {
	l, _, _ := m.Color().Lab()
	if l > lightCardThreshold {
		return theme.CardTextDark
	}
	return theme.CardTextLight
}

// RenderCard draws a memo as a colored block with its content and date.
func RenderCard(m data.Memo, width int, selected bool) string {
	base := lipgloss.NewStyle().
		Background(lipgloss.Color(m.ColorHex)).
		Foreground(CardForeground(m)).
		Padding(0, 2)
	if width > 1 {
		base = base.Width(width - 1)
	}

	content := strings.TrimRight(m.Content, "\n")

	card := lipgloss.JoinVertical(lipgloss.Left,
		base.Render(""),
		base.Bold(true).Render(content),
		base.Render(""),
		base.Render(m.DateString()),
		base.Render(""),
	)

	if selected {
		return selectedCardStyle.Render(card)
	}
	return cardStyle.Render(card)
}
