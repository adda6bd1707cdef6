// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// ComputeItemIDHash derives the opaque per-item identifier recorded on the
// ledger: SHA-256(salt || site || username). Hashing keeps the raw
// (site, username) pair off the public record while any holder of the salt
// can recompute the identifier.
func ComputeItemIDHash(salt []byte, site, username string) []byte {
	return Hash(salt, []byte(site), []byte(username))
}

// ComputeItemCommitment binds an item's identity, storage location, and key
// fingerprint into one fixed-size hash:
//
//	SHA-256(itemIDHash || contentRef || keyHash)
//
// The commitment is a pure function of its three inputs. No randomness, no
// timestamps: independent verifiers holding the same inputs recompute it
// byte-identically, which is what makes the on-ledger record checkable.
func ComputeItemCommitment(itemIDHash []byte, contentRef string, keyHash []byte) []byte {
	return Hash(itemIDHash, []byte(contentRef), keyHash)
}

// VerifyPasswordIntegrity reports whether SHA-256 of the candidate
// plaintext matches storedHash. It is a predicate, not a gate: recovery
// flows decide for themselves how to react to false. The comparison is
// constant-time even though the hash is public.
func VerifyPasswordIntegrity(candidate string, storedHash []byte) bool {
	sum := Hash([]byte(candidate))
	return subtle.ConstantTimeCompare(sum, storedHash) == 1
}

// DecodeCommitmentHex parses a hex-encoded 32-byte commitment. Used at
// transport boundaries where commitments travel as strings.
func DecodeCommitmentHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode commitment hex: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("commitment must be 32 bytes, got %d", len(b))
	}
	return b, nil
}
