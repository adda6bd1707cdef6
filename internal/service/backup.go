// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/chain-vault/internal/cache"
	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/models"
)

// Backup file layout: magic || salt (16) || iv (12) || ciphertext.
// The ciphertext is the JSON-encoded cache rows, AEAD-sealed under a
// PBKDF2 key. The envelopes inside remain sealed under their vault keys;
// the passphrase layer only hides labels and metadata.
const (
	backupMagic      = "CVBK1"
	backupSaltSize   = 16
	backupIterations = 600_000
)

type backupService struct {
	ownerID string
	cache   cache.EnvelopeCache
}

// NewBackupService constructs a [BackupService] for one owner's cache.
func NewBackupService(ownerID string, envelopeCache cache.EnvelopeCache) (BackupService, error) {
	if envelopeCache == nil {
		return nil, ErrNoCache
	}
	return &backupService{ownerID: ownerID, cache: envelopeCache}, nil
}

// ExportBackup implements [BackupService].
func (b *backupService) ExportBackup(ctx context.Context, passphrase string, w io.Writer) error {
	entries, err := b.cache.List(ctx, b.ownerID)
	if err != nil {
		return fmt.Errorf("list cached envelopes: %w", err)
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode backup payload: %w", err)
	}

	salt, err := crypto.RandomBytes(backupSaltSize)
	if err != nil {
		return fmt.Errorf("generate backup salt: %w", err)
	}
	iv, err := crypto.RandomBytes(crypto.IVSize)
	if err != nil {
		return fmt.Errorf("generate backup iv: %w", err)
	}

	key := crypto.PBKDF2Key([]byte(passphrase), salt, backupIterations, crypto.KeySize)
	defer crypto.Zeroize(key)

	ciphertext, err := crypto.AEADEncrypt(key, iv, payload)
	if err != nil {
		return fmt.Errorf("seal backup: %w", err)
	}

	for _, chunk := range [][]byte{[]byte(backupMagic), salt, iv, ciphertext} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}
	return nil
}

// ImportBackup implements [BackupService].
func (b *backupService) ImportBackup(ctx context.Context, passphrase string, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read backup: %w", err)
	}

	header := len(backupMagic) + backupSaltSize + crypto.IVSize
	if len(raw) < header || !bytes.HasPrefix(raw, []byte(backupMagic)) {
		return 0, ErrBackupFormat
	}

	salt := raw[len(backupMagic) : len(backupMagic)+backupSaltSize]
	iv := raw[len(backupMagic)+backupSaltSize : header]
	ciphertext := raw[header:]

	key := crypto.PBKDF2Key([]byte(passphrase), salt, backupIterations, crypto.KeySize)
	defer crypto.Zeroize(key)

	payload, err := crypto.AEADDecrypt(key, iv, ciphertext)
	if err != nil {
		// A wrong passphrase and a corrupted file are indistinguishable
		// here; both surface as an invalid backup.
		if errors.Is(err, crypto.ErrAuthentication) {
			return 0, fmt.Errorf("%w: %w", ErrBackupFormat, err)
		}
		return 0, fmt.Errorf("unseal backup: %w", err)
	}

	var entries []models.CachedEnvelope
	if err := json.Unmarshal(payload, &entries); err != nil {
		return 0, fmt.Errorf("%w: decode payload: %w", ErrBackupFormat, err)
	}

	restored := 0
	for _, entry := range entries {
		if err := b.cache.Upsert(ctx, entry); err != nil {
			return restored, fmt.Errorf("restore envelope %s: %w", entry.ItemID, err)
		}
		restored++
	}
	return restored, nil
}
