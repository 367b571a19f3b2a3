package memos

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/memos/data"
	"memo/internal/memos/service"
)

func newTestList(t *testing.T, contents ...string) ListModel {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var memos []data.Memo
	for i, c := range contents {
		memos = append(memos, data.NewMemo(c, base.Add(time.Duration(i)*time.Minute), data.RandomColor()))
	}
	svc, err := service.NewMemoService(context.Background(), data.NewMemoryStore(memos...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewListModel(svc)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestList_Navigation(t *testing.T) {
	m := newTestList(t, "one", "two", "three")

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	if sel, _ := m.Selected(); sel.Content != "three" {
		t.Errorf("expected cursor clamped at 'three', got %q", sel.Content)
	}

	m, _ = m.Update(key("g"))
	if sel, _ := m.Selected(); sel.Content != "one" {
		t.Errorf("expected 'one' after g, got %q", sel.Content)
	}

	m, _ = m.Update(key("G"))
	if sel, _ := m.Selected(); sel.Content != "three" {
		t.Errorf("expected 'three' after G, got %q", sel.Content)
	}
}

func TestList_Search(t *testing.T) {
	m := newTestList(t, "Buy milk", "Call mom", "Book flights")

	m, _ = m.Update(key("/"))
	if !m.IsSearching() {
		t.Fatal("expected search mode")
	}
	m, _ = m.Update(key("milk"))
	if len(m.Memos()) != 1 || m.Memos()[0].Content != "Buy milk" {
		t.Errorf("expected only 'Buy milk', got %v", m.Memos())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsSearching() {
		t.Error("expected enter to leave search mode")
	}
	if len(m.Memos()) != 1 {
		t.Error("expected filter to stay applied after enter")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Memos()) != 3 {
		t.Errorf("expected esc to clear the filter, got %d memos", len(m.Memos()))
	}
}

func TestList_EmptyState(t *testing.T) {
	m := newTestList(t)
	m.SetSize(60, 20)

	view := m.View()
	if !strings.Contains(view, emptyText) {
		t.Error("expected empty state text")
	}
	// once in the header, once under the empty message
	if n := strings.Count(view, "[a] "+addAction); n != 2 {
		t.Errorf("expected add call-to-action twice, got %d", n)
	}
}

func TestList_NoMatchState(t *testing.T) {
	m := newTestList(t, "Buy milk")
	m.SetSize(60, 20)

	m, _ = m.Update(key("/"))
	m, _ = m.Update(key("zzz"))

	view := m.View()
	if !strings.Contains(view, noMatchText) || !strings.Contains(view, clearHint) {
		t.Errorf("expected no-match message with clear hint, got %q", view)
	}
	if strings.Contains(view, emptyText) {
		t.Error("expected no-match state instead of the empty store message")
	}
}

func TestList_ScrollKeepsCursorVisible(t *testing.T) {
	m := newTestList(t, "memo-a", "memo-b", "memo-c", "memo-d", "memo-e", "memo-f", "memo-g", "memo-h")
	m.SetSize(60, 20)

	for i := 0; i < 7; i++ {
		m, _ = m.Update(key("j"))
	}

	if m.offset == 0 {
		t.Error("expected list to scroll")
	}
	view := m.View()
	if !strings.Contains(view, "memo-h") {
		t.Error("expected selected memo to be rendered")
	}
	if strings.Contains(view, "memo-a") {
		t.Error("expected first memo to be scrolled out of view")
	}

	m, _ = m.Update(key("g"))
	if m.offset != 0 {
		t.Errorf("expected offset 0 after jumping to top, got %d", m.offset)
	}
}

func TestRenderCard_ShowsContentAndDate(t *testing.T) {
	memo := data.Memo{
		ID:       "x",
		Content:  "Buy milk",
		Date:     time.Date(2024, 4, 22, 8, 0, 0, 0, time.UTC),
		ColorHex: "#336699",
	}

	card := RenderCard(memo, 40, false)
	if !strings.Contains(card, "Buy milk") {
		t.Error("expected content in card")
	}
	if !strings.Contains(card, "2024-04-22") {
		t.Error("expected date in card")
	}
}

func TestCardForeground(t *testing.T) {
	dark := data.Memo{ColorHex: "#112233"}
	light := data.Memo{ColorHex: "#FFFFEE"}

	if CardForeground(dark) == CardForeground(light) {
		t.Error("expected different text colors for dark and light cards")
	}
}
