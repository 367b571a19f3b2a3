package memos

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"memo/internal/logs"
	"memo/internal/memos/data"
	"memo/internal/memos/service"
	"memo/internal/tui/shared"
	"memo/internal/tui/theme"
)

const (
	screenTitle = "Memo"
	addAction   = "추가"
	emptyText   = "No memos yet."
	noMatchText = "No memos match the search."
	clearHint   = "[esc] clear search"
)

// ListModel shows every memo as a colored card, oldest first
type ListModel struct {
	svc   service.MemoService
	memos []data.Memo

	cursor int
	offset int

	searchActive bool
	searchInput  textinput.Model
	query        string

	width  int
	height int
}

// NewListModel creates the list view and loads memos from the service
func NewListModel(svc service.MemoService) ListModel {
	si := textinput.New()
	si.Prompt = "/"
	si.Placeholder = "search"
	si.CharLimit = 128

	m := ListModel{
		svc:         svc,
		searchInput: si,
	}
	m.Refresh()
	return m
}

// SetSize updates the dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
	m.ensureCursorVisible()
}

// Refresh re-reads memos from the service, applying the active search.
func (m *ListModel) Refresh() {
	memos, err := m.svc.Search(context.Background(), m.query)
	if err != nil {
		logs.Logger.Errorf("Error loading memos: %v", err)
		return
	}
	m.memos = memos
	if m.cursor >= len(m.memos) {
		m.cursor = len(m.memos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// Memos returns the memos currently displayed
func (m ListModel) Memos() []data.Memo {
	return m.memos
}

// Selected returns the memo under the cursor
func (m ListModel) Selected() (data.Memo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.memos) {
		return data.Memo{}, false
	}
	return m.memos[m.cursor], true
}

// Focus moves the cursor to the memo with the given id
func (m *ListModel) Focus(id string) {
	for i, memo := range m.memos {
		if memo.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

// IsSearching is true while the search input has focus
func (m ListModel) IsSearching() bool {
	return m.searchActive
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searchActive {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searchActive {
		return m.handleSearchKey(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.memos)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.memos) > 0 {
			m.cursor = len(m.memos) - 1
		}
	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.query)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()
	case "esc":
		if m.query != "" {
			m.query = ""
			m.Refresh()
		}
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m ListModel) handleSearchKey(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.query = ""
		m.Refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if v := m.searchInput.Value(); v != m.query {
		m.query = v
		m.cursor = 0
		m.offset = 0
		m.Refresh()
	}
	return m, cmd
}

func (m ListModel) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	if m.searchActive || m.query != "" {
		sections = append(sections, m.renderSearchBar())
	}

	bodyHeight := m.height
	if bodyHeight > 0 {
		bodyHeight -= lipgloss.Height(strings.Join(sections, "\n"))
	}

	if len(m.memos) == 0 {
		sections = append(sections, m.renderEmpty(bodyHeight))
		return strings.Join(sections, "\n")
	}

	sections = append(sections, m.renderCards(bodyHeight))
	return strings.Join(sections, "\n")
}

func (m ListModel) renderHeader() string {
	title := theme.Title.Render(screenTitle)
	count := theme.Muted.Render(fmt.Sprintf(" (%d)", len(m.memos)))
	action := theme.Action.Render("[a] " + addAction)

	left := title + count
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(action)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + action + "\n"
}

func (m ListModel) renderEmpty(height int) string {
	if m.query != "" {
		return shared.RenderEmptyState(theme.NoMatch.Render(noMatchText), theme.Muted.Render(clearHint), m.width, height)
	}
	return shared.RenderEmptyState(theme.Muted.Render(emptyText), theme.Action.Render("[a] "+addAction), m.width, height)
}

func (m ListModel) renderSearchBar() string {
	if m.searchActive {
		return m.searchInput.View()
	}
	return theme.SearchPrompt.Render("/"+m.query) + theme.Muted.Render("  (esc to clear)")
}

func (m ListModel) renderCards(height int) string {
	var cards []string
	used := 0
	for i := m.offset; i < len(m.memos); i++ {
		card := RenderCard(m.memos[i], m.width, i == m.cursor)
		h := lipgloss.Height(card)
		if height > 0 && len(cards) > 0 && used+h > height {
			break
		}
		cards = append(cards, card)
		used += h + 1
	}
	return strings.Join(cards, "\n\n")
}

func (m ListModel) cardHeight(i int) int {
	return lipgloss.Height(RenderCard(m.memos[i], m.width, false))
}

func (m *ListModel) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.offset < 0 {
		m.offset = 0
	}
	if m.height <= 0 || len(m.memos) == 0 {
		return
	}

	// header plus a possible search bar
	available := m.height - 3
	for m.offset < m.cursor {
		used := 0
		for i := m.offset; i <= m.cursor; i++ {
			used += m.cardHeight(i) + 1
		}
		if used-1 <= available {
			break
		}
		m.offset++
	}
}
