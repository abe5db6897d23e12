// ABOUTME: Key/value persistence contract shared by every storage backend.
// ABOUTME: Get/Set raw bytes per key; ErrNotFound distinguishes absence from I/O failure.
package kv

import (
	"context"
	"errors"
)

// Keys used by the drink tracker.
const (
	KeyProfile = "profile"
	KeyDrinks  = "drinks"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// Store is a flat key/value store. Implementations must return ErrNotFound
// (possibly wrapped) for missing keys and a different error for I/O failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
