package memos

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/tui/theme"
)

// ModalState is the visibility of the add modal
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

const (
	modalTitle      = "메모하기"
	modalInputLines = 8
	modalMaxWidth   = 72
)

// SaveMemoMsg is sent when the modal is saved. Content may be empty.
type SaveMemoMsg struct {
	Content string
}

// AddModal collects the text of a new memo. The draft is discarded whenever
// the modal closes.
type AddModal struct {
	state ModalState
	input textarea.Model
	width int
}

// NewAddModal creates a closed modal
func NewAddModal() AddModal {
	ta := textarea.New()
	ta.Placeholder = "Write a memo..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(modalInputLines)
	return AddModal{input: ta}
}

func (m AddModal) State() ModalState {
	return m.state
}

func (m AddModal) IsOpen() bool {
	return m.state == ModalOpen
}

// Value returns the current draft
func (m AddModal) Value() string {
	return m.input.Value()
}

// Open shows the modal with an empty draft
func (m *AddModal) Open() tea.Cmd {
	m.state = ModalOpen
	m.input.Reset()
	return m.input.Focus()
}

// Close hides the modal and drops the draft
func (m *AddModal) Close() {
	m.state = ModalClosed
	m.input.Reset()
	m.input.Blur()
}

// SetSize fits the modal inside the given screen width
func (m *AddModal) SetSize(width int) {
	w := width - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 20 {
		w = 20
	}
	m.width = w
	// border (2) + padding (4)
	m.input.SetWidth(w - 6)
}

// Update handles keys while the modal is open: ctrl+s saves, esc cancels,
// everything else edits the draft.
func (m AddModal) Update(msg tea.Msg) (AddModal, tea.Cmd) {
	if m.state != ModalOpen {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			content := m.input.Value()
			m.Close()
			return m, func() tea.Msg {
				return SaveMemoMsg{Content: content}
			}
		case "esc":
			m.Close()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the modal box
func (m AddModal) View() string {
	if m.state != ModalOpen {
		return ""
	}

	var content string
	content += theme.ModalTitle.Render(modalTitle) + "\n\n"
	content += m.input.View() + "\n\n"
	content += theme.Ok.Render("[ctrl+s]") + theme.ModalHelp.Render(" 저장") + "  "
	content += theme.Error.Render("[esc]") + theme.ModalHelp.Render(" 취소")

	box := theme.ModalBox
	if m.width > 0 {
		box = box.Width(m.width)
	}
	return box.Render(content)
}
