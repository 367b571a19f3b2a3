package data

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestPGStore_RoundTrip(t *testing.T) {
	uri := os.Getenv("MEMO_TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("MEMO_TEST_DATABASE_URI not set")
	}

	ctx := context.Background()
	store, err := NewPGStore(ctx, uri)
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	defer store.Close()

	memo := NewMemo("hello", time.Now(), RandomColor())
	if _, err := store.Insert(ctx, memo); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	defer store.Delete(ctx, memo.ID)

	if _, err := store.Insert(ctx, memo); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID on second insert, got %v", err)
	}

	memos, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	var found bool
	for _, m := range memos {
		if m.ID == memo.ID {
			found = true
			if m.Content != "hello" {
				t.Errorf("expected content 'hello', got %q", m.Content)
			}
			if m.ColorHex != memo.ColorHex {
				t.Errorf("expected color %s, got %s", memo.ColorHex, m.ColorHex)
			}
		}
	}
	if !found {
		t.Errorf("inserted memo %s not listed", memo.ID)
	}
}
