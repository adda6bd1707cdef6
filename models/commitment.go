// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LedgerEntry is one record of the append-mostly commitment log kept by
// the ledger collaborator, addressed by owner and a monotonically
// increasing per-owner index.
type LedgerEntry struct {
	// OwnerID is the owner address the entry is namespaced under.
	OwnerID string `json:"owner_id"`

	// EntryIndex is the caller-assigned, per-owner monotonic index.
	EntryIndex uint64 `json:"entry_index"`

	// Commitment is SHA-256 over (item id hash || content reference ||
	// key hash). A pure function of its inputs; any verifier holding the
	// same three values recomputes it byte-identically.
	Commitment []byte `json:"commitment"`

	// ContentRef is the content-addressed reference of the envelope blob
	// the commitment covers.
	ContentRef string `json:"content_ref"`
}

// SealedItem is the result of the write path for one vault item: the
// envelope has been encrypted, uploaded, and committed, in that order.
type SealedItem struct {
	// ItemID is the client-side identifier of the item.
	ItemID string

	// ContentRef is the reference returned by the content store.
	ContentRef string

	// Commitment is the integrity commitment recorded on the ledger.
	Commitment []byte

	// SecretHash is SHA-256 of the plaintext secret. Kept off-ledger by
	// the caller so a later recovery can run the integrity predicate.
	SecretHash []byte

	// EntryIndex and TxHandle identify the ledger record.
	EntryIndex uint64
	TxHandle   string
}
