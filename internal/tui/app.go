package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memo/internal/logs"
	"memo/internal/memos/service"
	memoview "memo/internal/tui/memos"
	"memo/internal/tui/messages"
	"memo/internal/tui/shared"
)

// AppModel is the root model: the memo list plus the add modal on top of it
type AppModel struct {
	svc      service.MemoService
	list     memoview.ListModel
	modal    memoview.AddModal
	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model
func NewAppModel(svc service.MemoService) AppModel {
	return AppModel{
		svc:   svc,
		list:  memoview.NewListModel(svc),
		modal: memoview.NewAddModal(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.list.SetSize(msg.Width, contentHeight)
		m.modal.SetSize(msg.Width)
		return m, nil

	case memoview.SaveMemoMsg:
		memo, err := m.svc.Add(context.Background(), msg.Content)
		if err != nil {
			logs.Logger.Errorf("Error adding memo: %v", err)
			return m, nil
		}
		m.list.Refresh()
		m.list.Focus(memo.ID)
		added := *memo
		return m, func() tea.Msg {
			return messages.MemoAddedMsg{Memo: added}
		}

	case messages.MemoAddedMsg:
		logs.Logger.Infof("Memo %s added (%s)", msg.Memo.ID, msg.Memo.ColorHex)
		return m, nil

	case messages.DataRefreshMsg:
		if err := m.svc.Reload(context.Background()); err != nil {
			logs.Logger.Errorf("Error reloading memos: %v", err)
			return m, nil
		}
		m.list.Refresh()
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.modal.IsOpen() {
			var cmd tea.Cmd
			m.modal, cmd = m.modal.Update(msg)
			return m, cmd
		}

		if !m.list.IsSearching() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "a":
				return m, m.modal.Open()
			case "r":
				return m, messages.Refresh()
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to whichever view has focus
	var cmd tea.Cmd
	if m.modal.IsOpen() {
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// IsModalOpen reports whether the add modal is showing
func (m AppModel) IsModalOpen() bool {
	return m.modal.IsOpen()
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), helpFooter, m.width, m.height)
	}

	contentHeight := m.height - 3
	var content string
	if m.modal.IsOpen() {
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.modal.View())
	} else {
		content = m.list.View()
	}

	var statusText string
	switch {
	case m.modal.IsOpen():
		statusText = "New memo | ctrl+s: save | esc: cancel"
	case m.list.IsSearching():
		statusText = "Search | enter: keep filter | esc: clear"
	default:
		statusText = "a:add | j/k:move | /:search | r:reload | ?:help | q:quit"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

const helpFooter = "Press any key to return to your memos"

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Memo - Keyboard Shortcuts",
			Binds: []shared.HelpBind{
				{Key: "a", Desc: "Add a memo (추가)"},
				{Key: "j / k", Desc: "Next / previous memo"},
				{Key: "g / G", Desc: "First / last memo"},
				{Key: "/", Desc: "Search"},
				{Key: "r", Desc: "Reload from disk"},
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
		{
			Title: "Add Modal",
			Binds: []shared.HelpBind{
				{Key: "ctrl+s", Desc: "Save (저장)"},
				{Key: "esc", Desc: "Cancel (취소)"},
				{Key: "enter", Desc: "New line"},
			},
		},
	}
}
