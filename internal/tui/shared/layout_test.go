package shared

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderEmptyState(t *testing.T) {
	out := RenderEmptyState("No memos yet.", "[a] 추가", 40, 9)

	if h := lipgloss.Height(out); h != 9 {
		t.Errorf("expected 9 lines, got %d", h)
	}
	lines := strings.Split(out, "\n")
	msgLine, actionLine := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "No memos yet.") {
			msgLine = i
		}
		if strings.Contains(l, "[a] 추가") {
			actionLine = i
		}
	}
	if msgLine <= 0 || actionLine != msgLine+2 {
		t.Errorf("expected message centered with the action two lines below, got %q", lines)
	}

	if got := RenderEmptyState("none", "", 0, 0); got != "none" {
		t.Errorf("expected unpadded message without a size, got %q", got)
	}
}

func TestRenderHelpPopup(t *testing.T) {
	sections := []HelpSection{
		{Title: "Memo", Binds: []HelpBind{{Key: "a", Desc: "Add a memo"}}},
		{Title: "Add Modal", Binds: []HelpBind{{Key: "ctrl+s", Desc: "Save"}}},
	}

	out := RenderHelpPopup(sections, "", 60, 20)
	for _, want := range []string{"Memo", "Add a memo", "Add Modal", "ctrl+s", "Save", defaultHelpFooter} {
		if !strings.Contains(out, want) {
			t.Errorf("expected popup to contain %q", want)
		}
	}

	out = RenderHelpPopup(sections, "any key returns to your memos", 0, 0)
	if !strings.Contains(out, "any key returns to your memos") || strings.Contains(out, defaultHelpFooter) {
		t.Errorf("expected custom footer only, got %q", out)
	}
}
