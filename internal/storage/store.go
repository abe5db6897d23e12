// ABOUTME: Store implements Repository as JSON documents in a key/value backend.
// ABOUTME: Missing or malformed documents read as empty defaults; I/O errors propagate.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/drinks/internal/kv"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrAmbiguousID = errors.New("ambiguous id prefix")
)

// Store keeps the profile and the drink collection as two JSON documents.
type Store struct {
	kv     kv.Store
	logger *log.Logger
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)

// New wraps a key/value backend. A nil logger discards output.
func New(backend kv.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: backend, logger: logger.WithPrefix("storage")}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// load reads key and decodes it as T. It reports found=false, without error,
// when the key is absent or its value does not decode.
func load[T any](ctx context.Context, s *Store, key string) (T, bool, error) {
	var zero T
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("read %s: %w", key, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.logger.Warn("ignoring malformed record", "key", key, "bytes", len(data), "err", err)
		return zero, false, nil
	}
	return v, true, nil
}

// save writes v under key as JSON.
func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	s.logger.Debug("saved", "key", key, "bytes", len(data))
	return nil
}
