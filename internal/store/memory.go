package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/MKhiriev/chain-vault/internal/crypto"
)

// MemoryStore is the deterministic in-process [ContentStore]: references
// are the hex SHA-256 of the content, so identical uploads always
// coalesce. Used in tests and as the backing store of the dev gateway.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put implements [ContentStore].
func (s *MemoryStore) Put(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	ref := hex.EncodeToString(crypto.Hash(data))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[ref]; !ok {
		s.blobs[ref] = append([]byte(nil), data...)
	}
	return ref, nil
}

// Get implements [ContentStore].
func (s *MemoryStore) Get(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return append([]byte(nil), data...), nil
}

// Contains reports whether ref is already stored. Used by the dev gateway
// to distinguish its two success responses.
func (s *MemoryStore) Contains(ref string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[ref]
	return ok
}

// ReferenceFor returns the reference Put would assign to data without
// storing anything.
func (s *MemoryStore) ReferenceFor(data []byte) string {
	return hex.EncodeToString(crypto.Hash(data))
}
