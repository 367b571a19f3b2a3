package data

import (
	"context"
	"errors"
)

// ErrMemoNotFound is returned when no memo has the requested id.
var ErrMemoNotFound = errors.New("memo not found")

// ErrDuplicateID is returned by Insert when a memo with the same id is stored.
var ErrDuplicateID = errors.New("duplicate memo id")

// Store holds memos in insertion order.
type Store interface {
	// Insert appends a memo and returns its id. An empty id is replaced with a
	// freshly generated one; an id already in the store fails with
	// ErrDuplicateID.
	Insert(ctx context.Context, memo Memo) (string, error)
	// List returns every memo in insertion order, regardless of memo dates.
	List(ctx context.Context) ([]Memo, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
