package tui

import "memo/internal/tui/theme"

var (
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint
)
