package shared

import "github.com/charmbracelet/lipgloss"

// RenderEmptyState centers a message with an action hint under it, such as
// the add shortcut shown when there are no memos. Without a size the block
// is returned unpadded.
func RenderEmptyState(message, action string, width, height int) string {
	block := message
	if action != "" {
		block = lipgloss.JoinVertical(lipgloss.Center, message, "", action)
	}
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
