package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"memo/internal/memos/data"
	"memo/internal/memos/service"
)

func newTestService(t *testing.T, memos ...data.Memo) service.MemoService {
	svc, err := service.NewMemoService(context.Background(), data.NewMemoryStore(memos...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

// captureOutput redirects command output into a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestRun_ExitCodes(t *testing.T) {
	svc := newTestService(t, data.Memo{ID: "abcd1234", Content: "Buy milk", ColorHex: "#112233"})

	tests := []struct {
		args     []string
		expected int
	}{
		{nil, 1},
		{[]string{"help"}, 0},
		{[]string{"bogus"}, 1},
		{[]string{"list"}, 0},
		{[]string{"list", "-n", "1"}, 0},
		{[]string{"show", "abcd"}, 0},
		{[]string{"show", "zzzz"}, 1},
		{[]string{"show"}, 1},
		{[]string{"search", "milk"}, 0},
		{[]string{"search"}, 1},
		{[]string{"add"}, 1},
		{[]string{"delete"}, 1},
	}

	for _, tt := range tests {
		if got := Run(tt.args, svc); got != tt.expected {
			t.Errorf("Run(%v): expected exit %d, got %d", tt.args, tt.expected, got)
		}
	}
}

func TestRun_AddJoinsArguments(t *testing.T) {
	svc := newTestService(t)

	if code := Run([]string{"add", "Buy", "milk"}, svc); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	memos, _ := svc.List(context.Background())
	if len(memos) != 1 {
		t.Fatalf("expected 1 memo, got %d", len(memos))
	}
	if memos[0].Content != "Buy milk" {
		t.Errorf("expected 'Buy milk', got %q", memos[0].Content)
	}
}

func TestRun_DeleteByPrefix(t *testing.T) {
	svc := newTestService(t,
		data.Memo{ID: "abcd1234", Content: "one"},
		data.Memo{ID: "ef015678", Content: "two"},
	)

	if code := Run([]string{"rm", "abcd"}, svc); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if svc.Count() != 1 {
		t.Errorf("expected 1 memo left, got %d", svc.Count())
	}
	if code := Run([]string{"rm", "abcd"}, svc); code != 1 {
		t.Errorf("expected exit 1 for deleted memo, got %d", code)
	}
}

func TestRun_ListLimitShowsNewest(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(t,
		data.Memo{ID: "aaaa1111", Content: "older memo", Date: day, ColorHex: "#111111"},
		data.Memo{ID: "bbbb2222", Content: "newest memo", Date: day.Add(time.Hour), ColorHex: "#222222"},
	)
	out := captureOutput(t)

	if code := Run([]string{"list", "-n", "1"}, svc); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	got := out.String()
	if !strings.Contains(got, "newest memo") {
		t.Errorf("expected newest memo in output, got %q", got)
	}
	if strings.Contains(got, "older memo") {
		t.Errorf("expected older memo to be cut by -n 1, got %q", got)
	}
	if !strings.Contains(got, "1 memo(s)") {
		t.Errorf("expected count line, got %q", got)
	}
}

func TestRun_ShowPrintsRGB(t *testing.T) {
	svc := newTestService(t, data.Memo{
		ID:       "abcd1234",
		Content:  "Buy milk",
		Date:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		ColorHex: "#FF8000",
	})
	out := captureOutput(t)

	if code := Run([]string{"show", "abcd"}, svc); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	got := out.String()
	for _, want := range []string{"ID:    abcd1234", "Date:  2026-03-01", "#FF8000 (rgb 255, 128, 0)", "Buy milk"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output, got %q", want, got)
		}
	}
}
