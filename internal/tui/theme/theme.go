package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette: ANSI 0-15 for chrome, hex for card text
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary       = lipgloss.Color("4") // blue
	Secondary     = lipgloss.Color("6") // cyan
	Success       = lipgloss.Color("2") // green
	Warning       = lipgloss.Color("3") // yellow
	Danger        = lipgloss.Color("1") // red
	Border        = lipgloss.Color("8") // dim
	BorderFocused = lipgloss.Color("4") // blue

	// Memo cards sit on arbitrary backgrounds; text flips to dark on light ones.
	CardTextLight = lipgloss.Color("#FFFFFF")
	CardTextDark  = lipgloss.Color("#1C1C1C")
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	NoMatch = lipgloss.NewStyle().Foreground(Warning)

	Action = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(TextBright)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	SearchPrompt = lipgloss.NewStyle().Foreground(Secondary)
)
