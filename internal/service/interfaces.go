// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates the envelope pipeline: key derivation,
// encryption, content-addressed upload, ledger commitment, and the
// reverse recovery path. All collaborators arrive by explicit dependency
// injection; nothing here reaches into ambient wallet or session state.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/chain-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the write and read path for vault items.
type VaultService interface {
	// SealItem runs the full write path for one secret: derive key,
	// encrypt, upload ciphertext, record the integrity commitment, in
	// that strict order. The commitment is never recorded before the
	// ciphertext is durably retrievable. A declined signature abandons
	// the operation with no partial state.
	SealItem(ctx context.Context, record models.SecretRecord) (models.SealedItem, error)

	// UnsealItem runs the read path for one ledger entry: fetch
	// ciphertext, re-derive the key from a fresh signature, decrypt, and
	// re-check the commitment. Cryptographic failures (ErrKeyMismatch,
	// ErrAuthentication, ErrCommitmentMismatch) propagate untouched.
	UnsealItem(ctx context.Context, entry models.LedgerEntry) (models.SecretRecord, error)

	// ListEntries returns the owner's ledger log, ascending by index.
	ListEntries(ctx context.Context) ([]models.LedgerEntry, error)

	// VerifyRecovered reports whether a recovered plaintext matches a
	// previously stored integrity hash. Predicate semantics: false on
	// mismatch, never an error.
	VerifyRecovered(secret string, storedHash []byte) bool

	// ProveStrength generates a zero-knowledge strength proof over the
	// password. The public output may legitimately encode "does not meet
	// policy"; that is a valid proof, not an error.
	ProveStrength(ctx context.Context, password []byte) (models.StrengthProof, error)
}

// BackupService exports and imports the local envelope cache as one
// passphrase-sealed file. Envelopes inside a backup stay encrypted under
// their vault keys; the backup layer only wraps them once more so the
// file does not leak labels or metadata at rest.
type BackupService interface {
	// ExportBackup writes all cached envelopes for the owner as an
	// AEAD-sealed blob under a PBKDF2 passphrase key.
	ExportBackup(ctx context.Context, passphrase string, w io.Writer) error

	// ImportBackup reads a backup produced by ExportBackup and upserts
	// its envelopes into the cache, returning how many were restored.
	ImportBackup(ctx context.Context, passphrase string, r io.Reader) (int, error)
}
