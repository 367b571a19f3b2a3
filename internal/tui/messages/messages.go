package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/memos/data"
)

// MemoAddedMsg reports a memo that has just been stored
type MemoAddedMsg struct {
	Memo data.Memo
}

// DataRefreshMsg signals that memos should be reloaded from the store
type DataRefreshMsg struct{}

func Refresh() tea.Cmd {
	return func() tea.Msg {
		return DataRefreshMsg{}
	}
}
