// Package storage persists save-game snapshots under named slots. Two
// backends are provided: the filesystem for local play and Redis for
// hosted sessions.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a slot does not exist.
var ErrNotFound = errors.New("save slot not found")

// SaveStore is the slot-addressed persistence contract. Slot names are
// caller-chosen; Put overwrites an existing slot.
type SaveStore interface {
	Put(ctx context.Context, slot string, data []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, slot string) error
	Close() error
}
