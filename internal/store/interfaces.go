// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store moves opaque encrypted blobs to and from content-addressed
// storage. It is a boundary package: it knows nothing about envelopes,
// keys, or commitments, only bytes in, reference out, and back.
//
// Three implementations ship: an IPFS backend over the go-ipfs-api shell,
// an HTTP pinning-gateway client, and a deterministic in-memory store for
// tests. All satisfy the same round-trip law: Get(Put(b)) == b.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/content_store_mock.go -package=mock

// ContentStore persists and retrieves opaque byte blobs by
// content-addressed reference.
type ContentStore interface {
	// Put uploads data and returns its content-derived reference. Two
	// uploads of identical bytes may or may not coalesce into one
	// reference; callers must not rely on either behaviour.
	Put(ctx context.Context, data []byte) (string, error)

	// Get retrieves the bytes previously stored under ref, byte-identical
	// to what was uploaded. A reference the store has never seen (or has
	// expired) fails with ErrNotFound; network-level failures fail with
	// ErrTransport so callers can retry.
	Get(ctx context.Context, ref string) ([]byte, error)
}
