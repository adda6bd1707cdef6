// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/chain-vault/internal/cache"
	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/proof"
	"github.com/MKhiriev/chain-vault/internal/store"
	"github.com/MKhiriev/chain-vault/internal/wallet"
	"github.com/MKhiriev/chain-vault/models"
)

// itemIDSaltDomain scopes the per-owner item-id salt away from every
// other hash in the system. Part of the wire contract.
const itemIDSaltDomain = "chain-vault/item-id-salt/v1"

// recordAttempts bounds index-conflict retries when two sessions seal
// concurrently for the same owner.
const recordAttempts = 3

// VaultDeps carries the collaborators of the vault service. Cache is
// optional; everything else is required.
type VaultDeps struct {
	Signer   wallet.Signer
	Keyring  crypto.KeyringService
	Codec    crypto.EnvelopeCodec
	Store    store.ContentStore
	Registry ledger.CommitmentRegistry
	Backend  proof.ProvingBackend
	Cache    cache.EnvelopeCache
}

type vaultService struct {
	deps VaultDeps
}

// NewVaultService constructs a [VaultService] from its collaborators.
func NewVaultService(deps VaultDeps) (VaultService, error) {
	switch {
	case deps.Signer == nil:
		return nil, errors.New("vault service: signer is required")
	case deps.Keyring == nil:
		return nil, errors.New("vault service: keyring is required")
	case deps.Codec == nil:
		return nil, errors.New("vault service: envelope codec is required")
	case deps.Store == nil:
		return nil, errors.New("vault service: content store is required")
	case deps.Registry == nil:
		return nil, errors.New("vault service: commitment registry is required")
	case deps.Backend == nil:
		return nil, errors.New("vault service: proving backend is required")
	}
	return &vaultService{deps: deps}, nil
}

// SealItem implements [VaultService].
func (s *vaultService) SealItem(ctx context.Context, record models.SecretRecord) (models.SealedItem, error) {
	owner := s.deps.Signer.Address()

	key, err := s.deriveKey(ctx, owner)
	if err != nil {
		return models.SealedItem{}, err
	}
	defer crypto.Zeroize(key)

	env, err := s.deps.Codec.EncryptItem(record, key)
	if err != nil {
		return models.SealedItem{}, fmt.Errorf("seal item: %w", err)
	}

	blob, err := json.Marshal(env)
	if err != nil {
		return models.SealedItem{}, fmt.Errorf("encode envelope: %w", err)
	}

	// Upload strictly before committing: a commitment pointing at a blob
	// that never landed is unrecoverable data loss.
	ref, err := s.deps.Store.Put(ctx, blob)
	if err != nil {
		return models.SealedItem{}, fmt.Errorf("upload envelope: %w", err)
	}

	idHash := crypto.ComputeItemIDHash(s.itemIDSalt(owner), record.Site, record.Username)
	commitment := crypto.ComputeItemCommitment(idHash, ref, crypto.Hash(key))

	entryIndex, txHandle, err := s.recordWithRetry(ctx, owner, commitment, ref)
	if err != nil {
		return models.SealedItem{}, err
	}

	sealed := models.SealedItem{
		ItemID:     uuid.NewString(),
		ContentRef: ref,
		Commitment: commitment,
		SecretHash: crypto.Hash([]byte(record.Secret)),
		EntryIndex: entryIndex,
		TxHandle:   txHandle,
	}

	if s.deps.Cache != nil {
		cacheErr := s.deps.Cache.Upsert(ctx, models.CachedEnvelope{
			OwnerID:    owner,
			ItemID:     sealed.ItemID,
			Envelope:   env,
			ContentRef: ref,
			EntryIndex: entryIndex,
		})
		if cacheErr != nil {
			// The seal stands; only the local mirror is stale.
			return sealed, fmt.Errorf("%w: %w", ErrCacheMirror, cacheErr)
		}
	}

	return sealed, nil
}

// UnsealItem implements [VaultService].
func (s *vaultService) UnsealItem(ctx context.Context, entry models.LedgerEntry) (models.SecretRecord, error) {
	blob, err := s.deps.Store.Get(ctx, entry.ContentRef)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("fetch envelope: %w", err)
	}

	var env models.VaultItemEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return models.SecretRecord{}, fmt.Errorf("decode envelope: %w", err)
	}

	owner := s.deps.Signer.Address()
	key, err := s.deriveKey(ctx, owner)
	if err != nil {
		return models.SecretRecord{}, err
	}
	defer crypto.Zeroize(key)

	secret, err := s.deps.Codec.DecryptItem(env, key)
	if err != nil {
		// ErrKeyMismatch / ErrAuthentication surface as-is: the caller
		// shows "cannot decrypt", never a default or cached value.
		return models.SecretRecord{}, err
	}

	idHash := crypto.ComputeItemIDHash(s.itemIDSalt(owner), env.Site, env.Username)
	recomputed := crypto.ComputeItemCommitment(idHash, entry.ContentRef, crypto.Hash(key))
	if subtle.ConstantTimeCompare(recomputed, entry.Commitment) != 1 {
		return models.SecretRecord{}, ErrCommitmentMismatch
	}

	return models.SecretRecord{
		Site:     env.Site,
		Username: env.Username,
		Secret:   string(secret),
		Metadata: env.Metadata,
	}, nil
}

// ListEntries implements [VaultService].
func (s *vaultService) ListEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	return s.deps.Registry.LatestEntries(ctx, s.deps.Signer.Address())
}

// VerifyRecovered implements [VaultService].
func (s *vaultService) VerifyRecovered(secret string, storedHash []byte) bool {
	return crypto.VerifyPasswordIntegrity(secret, storedHash)
}

// ProveStrength implements [VaultService].
func (s *vaultService) ProveStrength(ctx context.Context, password []byte) (models.StrengthProof, error) {
	return s.deps.Backend.GenerateProof(ctx, password)
}

// deriveKey obtains a fresh signature and derives the vault key. The
// signature is zeroized before returning; the caller owns the key and
// must do the same.
func (s *vaultService) deriveKey(ctx context.Context, owner string) ([]byte, error) {
	sig, err := s.deps.Signer.Sign(ctx, wallet.KeyUnlockMessage)
	if err != nil {
		return nil, fmt.Errorf("request signature: %w", err)
	}
	defer crypto.Zeroize(sig)

	key, err := s.deps.Keyring.DeriveVaultKey(sig, owner)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	return key, nil
}

// recordWithRetry appends the commitment at the next free index. A
// concurrent session for the same owner can race us to an index, in
// which case the registry answers ErrIndexConflict and we re-read.
func (s *vaultService) recordWithRetry(ctx context.Context, owner string, commitment []byte, ref string) (uint64, string, error) {
	var lastErr error
	for attempt := 0; attempt < recordAttempts; attempt++ {
		entries, err := s.deps.Registry.LatestEntries(ctx, owner)
		if err != nil {
			return 0, "", fmt.Errorf("read ledger entries: %w", err)
		}

		var next uint64
		if n := len(entries); n > 0 {
			next = entries[n-1].EntryIndex + 1
		}

		txHandle, err := s.deps.Registry.RecordCommitment(ctx, owner, next, commitment, ref)
		if err == nil {
			return next, txHandle, nil
		}
		if !errors.Is(err, ledger.ErrIndexConflict) {
			return 0, "", fmt.Errorf("record commitment: %w", err)
		}
		lastErr = err
	}
	return 0, "", fmt.Errorf("record commitment: %w", lastErr)
}

func (s *vaultService) itemIDSalt(owner string) []byte {
	return crypto.Hash([]byte(owner), []byte(itemIDSaltDomain))
}
