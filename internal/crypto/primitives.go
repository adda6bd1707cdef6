// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic envelope pipeline of
// chain-vault: platform primitives, deterministic key derivation from a
// wallet signature, the versioned vault-item envelope codec, and the
// integrity commitment functions.
//
// Nothing in this package logs or keeps state. All failures are returned
// as explicit errors wrapping the sentinel values in errors.go so callers
// can branch with errors.Is.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// IVSize is the AES-GCM nonce size in bytes. The codec never accepts any
// other length.
const IVSize = 12

// KeySize is the symmetric key size in bytes (AES-256).
const KeySize = 32

// Hash computes SHA-256 over the concatenation of chunks and returns the
// 32-byte digest. Deterministic and stable across platforms.
func Hash(chunks ...[]byte) []byte {
	h := sha256.New()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// DeriveBits runs HKDF-SHA256 extract-and-expand over ikm with the given
// salt and info, producing lengthBits of output. lengthBits must be a
// positive multiple of 8 within HKDF's single-expand limit; anything else
// fails with ErrKeyDerivation.
func DeriveBits(ikm, salt, info []byte, lengthBits int) ([]byte, error) {
	if lengthBits <= 0 || lengthBits%8 != 0 {
		return nil, fmt.Errorf("%w: unsupported output length %d bits", ErrKeyDerivation, lengthBits)
	}
	n := lengthBits / 8
	if n > 255*sha256.Size {
		return nil, fmt.Errorf("%w: output length %d bits exceeds HKDF limit", ErrKeyDerivation, lengthBits)
	}

	out := make([]byte, n)
	r := hkdf.New(sha256.New, ikm, salt, info)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	return out, nil
}

// PBKDF2Key derives a key of keyLen bytes from a passphrase and salt using
// PBKDF2-HMAC-SHA256 with the given iteration count. Used for the backup
// export key only; vault keys come from DeriveBits so they stay
// reconstructible from a wallet signature.
func PBKDF2Key(passphrase, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, keyLen, sha256.New)
}

// AEADEncrypt encrypts plaintext with AES-256-GCM under key and the given
// 12-byte IV, returning ciphertext with the auth tag appended. The IV must
// never be reused with the same key.
func AEADEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), IVSize)
	}
	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// AEADDecrypt reverses AEADEncrypt. A tag mismatch fails with
// ErrAuthentication; no partial or corrupted plaintext is ever returned.
func AEADDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), IVSize)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return plaintext, nil
}

// RandomBytes reads n cryptographically secure random bytes from the OS
// CSPRNG. Used for IV and salt generation only; the vault key itself must
// stay deterministic.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// Zeroize overwrites b in place. Callers use it to shorten the lifetime of
// derived key material once an encrypt or decrypt call is done.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeyDerivation, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
