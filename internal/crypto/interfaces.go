// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/chain-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyringService derives the symmetric vault key from a wallet signature.
// It knows nothing about the network, storage, or wallets; the signature
// and owner identifier arrive as plain arguments.
type KeyringService interface {
	// DeriveVaultKey deterministically derives the 256-bit vault key from
	// a raw signature and the owner identifier. Identical inputs always
	// yield an identical key.
	DeriveVaultKey(signature []byte, ownerID string) ([]byte, error)

	// DeriveVaultKeyHex is DeriveVaultKey for a hex-encoded signature
	// ("0x" prefix optional). Fails with ErrKeyDerivation on bad hex.
	DeriveVaultKeyHex(signatureHex string, ownerID string) ([]byte, error)

	// KeyFingerprint returns the hex SHA-256 of a key. Non-secret.
	KeyFingerprint(key []byte) string
}

// EnvelopeCodec encrypts a plaintext secret record into a versioned
// vault-item envelope and reverses the transform given the right key.
type EnvelopeCodec interface {
	// EncryptItem seals record.Secret under key with a fresh random IV
	// and assembles the envelope with its non-secret labels and metadata.
	EncryptItem(record models.SecretRecord, key []byte) (models.VaultItemEnvelope, error)

	// DecryptItem recovers the plaintext secret bytes from env. It fails
	// closed with ErrUnsupportedVersion on an unknown schema version,
	// with ErrKeyMismatch when the key fingerprint differs, and with
	// ErrAuthentication on a GCM tag mismatch.
	DecryptItem(env models.VaultItemEnvelope, key []byte) ([]byte, error)
}
