package data

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps memos in a slice. Nothing is persisted.
type MemoryStore struct {
	mu    sync.RWMutex
	memos []Memo
}

func NewMemoryStore(memos ...Memo) *MemoryStore {
	return &MemoryStore{memos: append([]Memo(nil), memos...)}
}

func (s *MemoryStore) Insert(_ context.Context, memo Memo) (string, error) {
	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.memos {
		if m.ID == memo.ID {
			return "", fmt.Errorf("%w: %s", ErrDuplicateID, memo.ID)
		}
	}
	s.memos = append(s.memos, memo)
	return memo.ID, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Memo(nil), s.memos...), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.memos {
		if m.ID == id {
			s.memos = append(s.memos[:i], s.memos[i+1:]...)
			return nil
		}
	}
	return ErrMemoNotFound
}

func (s *MemoryStore) Close() error {
	return nil
}
