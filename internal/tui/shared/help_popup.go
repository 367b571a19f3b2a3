package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memo/internal/tui/theme"
)

// HelpBind is one key and what it does
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups the bindings of one screen, e.g. the list or the add modal
type HelpSection struct {
	Title string
	Binds []HelpBind
}

const defaultHelpFooter = "Press any key to close"

var helpDesc = lipgloss.NewStyle().Foreground(theme.Text)

// RenderHelpPopup boxes the sections in the middle of the screen. The key
// column is as wide as the longest key; footer replaces the default
// dismiss hint when set.
func RenderHelpPopup(sections []HelpSection, footer string, width, height int) string {
	keyWidth := 0
	for _, section := range sections {
		for _, bind := range section.Binds {
			keyWidth = max(keyWidth, lipgloss.Width(bind.Key))
		}
	}
	keyStyle := theme.Action.Width(keyWidth + 2)

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Title.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString("  " + keyStyle.Render(bind.Key) + helpDesc.Render(bind.Desc) + "\n")
		}
	}

	if footer == "" {
		footer = defaultHelpFooter
	}
	b.WriteString("\n" + theme.Muted.Render(footer))

	box := theme.ModalBox.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
