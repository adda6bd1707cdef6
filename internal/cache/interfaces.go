// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps a local, rebuildable mirror of sealed envelopes
// keyed by (owner_id, item_id). The cache is a convenience over the
// ledger+storage pair and is treated as untrusted: anything read from it
// still goes through the same decrypt and verification path as a fresh
// download, and dropping the database loses nothing.
package cache

import (
	"context"
	"errors"

	"github.com/MKhiriev/chain-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cache_mock.go -package=mock

// ErrNotCached indicates the (owner, item) pair has no cached envelope.
var ErrNotCached = errors.New("envelope not cached")

// EnvelopeCache stores sealed envelopes locally.
type EnvelopeCache interface {
	// Upsert inserts or replaces the cached envelope for (ownerID,
	// itemID). Replacement is whole-row: envelopes are immutable, so an
	// update always carries a complete new envelope.
	Upsert(ctx context.Context, entry models.CachedEnvelope) error

	// Get returns the cached envelope for (ownerID, itemID), or
	// ErrNotCached.
	Get(ctx context.Context, ownerID, itemID string) (models.CachedEnvelope, error)

	// List returns all cached envelopes for ownerID, ascending by
	// entry index.
	List(ctx context.Context, ownerID string) ([]models.CachedEnvelope, error)

	// Delete removes the cached envelope for (ownerID, itemID). Deleting
	// an absent row is not an error.
	Delete(ctx context.Context, ownerID, itemID string) error
}
