package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/chain-vault/models"
)

// MemoryRegistry is the in-process [CommitmentRegistry]: a per-owner map
// of index-keyed entries. Backs the dev registry server and tests.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]map[uint64]models.LedgerEntry
}

// NewMemoryRegistry constructs an empty [MemoryRegistry].
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]map[uint64]models.LedgerEntry)}
}

// RecordCommitment implements [CommitmentRegistry].
func (r *MemoryRegistry) RecordCommitment(ctx context.Context, ownerID string, entryIndex uint64, commitment []byte, contentRef string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.entries[ownerID]
	if !ok {
		owned = make(map[uint64]models.LedgerEntry)
		r.entries[ownerID] = owned
	}
	if _, taken := owned[entryIndex]; taken {
		return "", fmt.Errorf("%w: owner %s index %d", ErrIndexConflict, ownerID, entryIndex)
	}

	owned[entryIndex] = models.LedgerEntry{
		OwnerID:    ownerID,
		EntryIndex: entryIndex,
		Commitment: append([]byte(nil), commitment...),
		ContentRef: contentRef,
	}
	return "tx-" + uuid.NewString(), nil
}

// LatestEntries implements [CommitmentRegistry].
func (r *MemoryRegistry) LatestEntries(ctx context.Context, ownerID string) ([]models.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.entries[ownerID]
	out := make([]models.LedgerEntry, 0, len(owned))
	for _, e := range owned {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryIndex < out[j].EntryIndex })
	return out, nil
}
