// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MKhiriev/chain-vault/models"
)

// envelopeCodec is the private implementation of [EnvelopeCodec].
type envelopeCodec struct {
	keyring KeyringService
}

// NewEnvelopeCodec constructs an [EnvelopeCodec]. Stateless.
func NewEnvelopeCodec() EnvelopeCodec {
	return &envelopeCodec{keyring: NewKeyringService()}
}

// EncryptItem implements [EnvelopeCodec].
//
// Every call draws a fresh 12-byte IV from the CSPRNG. Reusing an IV under
// the same GCM key voids both confidentiality and integrity, which is why
// envelopes are immutable: an update goes through EncryptItem again and
// yields a whole new envelope.
//
// An empty secret is valid input and encrypts to a short ciphertext; any
// policy about empty passwords belongs to a layer above the codec.
func (c *envelopeCodec) EncryptItem(record models.SecretRecord, key []byte) (models.VaultItemEnvelope, error) {
	iv, err := RandomBytes(IVSize)
	if err != nil {
		return models.VaultItemEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := AEADEncrypt(key, iv, []byte(record.Secret))
	if err != nil {
		return models.VaultItemEnvelope{}, fmt.Errorf("encrypt secret: %w", err)
	}

	meta := record.Metadata
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	return models.VaultItemEnvelope{
		Version:    models.EnvelopeVersion,
		Site:       record.Site,
		Username:   record.Username,
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         iv,
		KeyHash:    c.keyring.KeyFingerprint(key),
		Metadata:   meta,
	}, nil
}

// DecryptItem implements [EnvelopeCodec].
//
// The key fingerprint pre-check makes the common wrong-key case cheap to
// detect, but it is only an optimisation: a forged fingerprint still runs
// into the GCM tag check, which is the actual gate.
func (c *envelopeCodec) DecryptItem(env models.VaultItemEnvelope, key []byte) ([]byte, error) {
	if env.Version != models.EnvelopeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	fingerprint := c.keyring.KeyFingerprint(key)
	if subtle.ConstantTimeCompare([]byte(fingerprint), []byte(env.KeyHash)) != 1 {
		return nil, ErrKeyMismatch
	}

	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	plaintext, err := AEADDecrypt(key, env.IV, ciphertext)
	if err != nil {
		// ErrAuthentication propagates untouched: a tag mismatch must
		// surface as "cannot decrypt", never as default plaintext.
		return nil, err
	}
	return plaintext, nil
}
