package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"memo/internal/logs"
	"memo/internal/memos/data"
)

// ErrAmbiguousID is returned by Get when a prefix matches more than one memo.
var ErrAmbiguousID = errors.New("ambiguous memo id")

// minPrefixLen is the shortest id prefix Get accepts.
const minPrefixLen = 4

// MemoService defines the interface for memo operations.
type MemoService interface {
	List(ctx context.Context) ([]data.Memo, error)
	Get(ctx context.Context, id string) (*data.Memo, error)
	Add(ctx context.Context, content string) (*data.Memo, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]data.Memo, error)
	Count() int
	Reload(ctx context.Context) error
}

type memoServiceImpl struct {
	store data.Store
	memos []data.Memo

	now      func() time.Time
	newColor func() string
}

// NewMemoService creates a MemoService backed by store and loads its memos.
func NewMemoService(ctx context.Context, store data.Store) (MemoService, error) {
	svc := &memoServiceImpl{
		store:    store,
		now:      time.Now,
		newColor: data.RandomColor,
	}
	if err := svc.Reload(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *memoServiceImpl) Reload(ctx context.Context) error {
	memos, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("error loading memos: %w", err)
	}
	s.memos = memos
	return nil
}

// List returns a copy of the loaded memos in insertion order.
func (s *memoServiceImpl) List(_ context.Context) ([]data.Memo, error) {
	return append([]data.Memo(nil), s.memos...), nil
}

func (s *memoServiceImpl) Count() int {
	return len(s.memos)
}

// Get accepts a full id or a unique prefix of at least four characters.
func (s *memoServiceImpl) Get(_ context.Context, id string) (*data.Memo, error) {
	var matches []data.Memo
	for _, m := range s.memos {
		if m.ID == id {
			return &m, nil
		}
		if len(id) >= minPrefixLen && strings.HasPrefix(m.ID, id) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", data.ErrMemoNotFound, id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %d memos", ErrAmbiguousID, id, len(matches))
	}
}

// Add builds a memo from content with the current time and a random color,
// stores it and refreshes the listing.
func (s *memoServiceImpl) Add(ctx context.Context, content string) (*data.Memo, error) {
	memo := data.NewMemo(content, s.now(), s.newColor())

	id, err := s.store.Insert(ctx, memo)
	if err != nil {
		return nil, fmt.Errorf("error adding memo: %w", err)
	}
	memo.ID = id
	logs.Logger.Infof("Service: added memo %s", id)

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return &memo, nil
}

func (s *memoServiceImpl) Delete(ctx context.Context, id string) error {
	logs.Logger.Infof("Service: delete memo %s", id)
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Search fuzzy-matches query against memo contents, best match first. An
// empty query returns every memo.
func (s *memoServiceImpl) Search(_ context.Context, query string) ([]data.Memo, error) {
	if strings.TrimSpace(query) == "" {
		return append([]data.Memo(nil), s.memos...), nil
	}

	matches := fuzzy.FindFrom(query, memoSource(s.memos))
	result := make([]data.Memo, 0, len(matches))
	for _, match := range matches {
		result = append(result, s.memos[match.Index])
	}
	return result, nil
}

// memoSource adapts a memo slice to fuzzy.Source.
type memoSource []data.Memo

func (ms memoSource) String(i int) string {
	return ms[i].Content
}

func (ms memoSource) Len() int {
	return len(ms)
}
