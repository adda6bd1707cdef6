// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger defines the commitment-registry collaborator: an
// append-mostly, caller-indexed log of integrity commitments, namespaced
// per owner. Consensus and finality semantics belong to the deployment's
// chain, not to this package.
package ledger

import (
	"context"
	"errors"

	"github.com/MKhiriev/chain-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_mock.go -package=mock

var (
	// ErrIndexConflict indicates the (owner, entryIndex) slot is already
	// taken. The caller re-reads the log and picks the next index.
	ErrIndexConflict = errors.New("ledger entry index already recorded")

	// ErrTransport indicates a network-level registry failure, retryable.
	ErrTransport = errors.New("ledger transport error")
)

// CommitmentRegistry records and reads integrity commitments.
type CommitmentRegistry interface {
	// RecordCommitment appends a commitment for ownerID at entryIndex and
	// returns an opaque transaction handle. Indexes are assigned by the
	// caller and must increase per owner; a reused index fails with
	// ErrIndexConflict.
	RecordCommitment(ctx context.Context, ownerID string, entryIndex uint64, commitment []byte, contentRef string) (string, error)

	// LatestEntries returns all entries recorded for ownerID in ascending
	// index order. An owner with no entries yields an empty slice, not an
	// error.
	LatestEntries(ctx context.Context, ownerID string) ([]models.LedgerEntry, error)
}
