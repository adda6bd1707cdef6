// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Domain-separation constants. These are part of the wire contract: the
// encryption and decryption paths must use identical values, otherwise
// derivation silently yields a different key and decryption fails with
// ErrAuthentication rather than a derivation-time error. Changing either
// constant orphans every existing vault.
const (
	// saltDomainSep is appended to the owner identifier when deriving the
	// HKDF salt, scoping keys per identity.
	saltDomainSep = "chain-vault/key-derivation/v1"

	// vaultKeyInfo is the HKDF info label for the vault encryption key,
	// scoping keys per purpose.
	vaultKeyInfo = "chain-vault/vault-key"
)

// keyringService is the private implementation of [KeyringService].
type keyringService struct{}

// NewKeyringService constructs a [KeyringService]. The service is
// stateless; all inputs arrive as plain arguments so the derivation is
// testable without a live wallet.
func NewKeyringService() KeyringService {
	return &keyringService{}
}

// DeriveVaultKey implements [KeyringService]. The derivation is
//
//	ikm  = SHA-256(signature)
//	salt = SHA-256(ownerID || saltDomainSep)
//	key  = HKDF-SHA256(ikm, salt, vaultKeyInfo, 256 bits)
//
// For a fixed (signature, ownerID) pair the output is byte-identical
// across calls and processes. That determinism is the linchpin of
// recovery: a fresh wallet signature over the fixed unlock message is the
// only secret a user ever needs, no key store is persisted anywhere.
//
// The caller owns the returned key and should Zeroize it as soon as the
// encrypt or decrypt call it was derived for completes.
func (k *keyringService) DeriveVaultKey(signature []byte, ownerID string) ([]byte, error) {
	if len(signature) == 0 {
		return nil, fmt.Errorf("%w: empty signature", ErrKeyDerivation)
	}

	ikm := Hash(signature)
	salt := Hash([]byte(ownerID), []byte(saltDomainSep))
	return DeriveBits(ikm, salt, []byte(vaultKeyInfo), 256)
}

// DeriveVaultKeyHex implements [KeyringService]. It decodes a hex-encoded
// signature (with or without 0x prefix) and delegates to DeriveVaultKey.
// Malformed hex fails with ErrKeyDerivation.
func (k *keyringService) DeriveVaultKeyHex(signatureHex string, ownerID string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(signatureHex), "0x")
	sig, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: decode signature hex: %w", ErrKeyDerivation, err)
	}
	return k.DeriveVaultKey(sig, ownerID)
}

// KeyFingerprint implements [KeyringService]. It returns the hex-encoded
// SHA-256 of the key. The fingerprint is not secret and is embedded in
// envelopes so a wrong key is detected before any AEAD work.
func (k *keyringService) KeyFingerprint(key []byte) string {
	return hex.EncodeToString(Hash(key))
}
