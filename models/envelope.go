// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EnvelopeVersion is the only envelope schema version this build can
// produce and decode. Decoders fail closed on anything else.
const EnvelopeVersion = 1

// SecretRecord is the plaintext form of one vault item as entered by the
// user. It exists only in client memory; the secret field never leaves the
// device unencrypted.
type SecretRecord struct {
	// Site is the human-readable label of the site or service the secret
	// belongs to. Not a secret.
	Site string

	// Username is the account label for the site. Not a secret.
	Username string

	// Secret is the password or other secret material. An empty string is
	// a valid secret; policy about empty passwords lives above the codec.
	Secret string

	// Metadata carries the non-secret attributes of the item.
	Metadata EnvelopeMetadata
}

// VaultItemEnvelope is the encrypted-at-rest representation of one vault
// secret. Envelopes are immutable: an update produces a new envelope with a
// fresh IV, never an in-place edit.
type VaultItemEnvelope struct {
	// Version is the envelope schema version. See EnvelopeVersion.
	Version int `json:"version"`

	// Site and Username are stored in the clear. They are labels, not
	// secrets; the opaque on-ledger item identifier is derived from them
	// separately so the ledger never sees the raw pair.
	Site     string `json:"site"`
	Username string `json:"username"`

	// Ciphertext is the AES-256-GCM output (including the auth tag),
	// base64 standard encoding.
	Ciphertext string `json:"ciphertext"`

	// IV is the 12-byte GCM nonce used for this envelope only.
	IV []byte `json:"iv"`

	// KeyHash is SHA-256 of the derived key, hex encoded. It is a
	// non-secret fingerprint used to detect a wrong key before attempting
	// decryption, not a capability.
	KeyHash string `json:"key_hash"`

	// Metadata is the non-secret metadata block.
	Metadata EnvelopeMetadata `json:"metadata"`
}

// EnvelopeMetadata describes non-secret attributes of a vault item, used
// for organization and presentation only.
type EnvelopeMetadata struct {
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category,omitempty"`
	Network   string    `json:"network,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedEnvelope is one row of the local envelope cache: an envelope plus
// the ledger coordinates it was sealed under. The cache is a rebuildable
// mirror of the ledger+storage pair, never the system of record.
type CachedEnvelope struct {
	OwnerID    string
	ItemID     string
	Envelope   VaultItemEnvelope
	ContentRef string
	EntryIndex uint64
	UpdatedAt  time.Time
}
