// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet defines the identity collaborator boundary: something
// that can sign the fixed key-unlock message. The signature is the sole
// entropy source for vault-key derivation, so implementations must sign
// deterministically (same message, same key, same signature).
package wallet

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_mock.go -package=mock

// KeyUnlockMessage is the fixed, well-known message signed to derive the
// vault key. Part of the wire contract: changing it changes every derived
// key and orphans existing vaults.
const KeyUnlockMessage = "chain-vault: unlock my password vault (v1)"

// ErrSignatureDeclined indicates the user rejected or cancelled the
// signature request. It marks an abandoned operation, not a crash-worthy
// failure; callers stop the current flow and leave no partial state.
var ErrSignatureDeclined = errors.New("signature request declined")

// Signer is the wallet/identity collaborator. A signature request may
// involve user interaction, so Sign takes a context and may return
// ErrSignatureDeclined or the context's error.
type Signer interface {
	// Address returns the owner identifier (an address string) that the
	// wallet signs for.
	Address() string

	// Sign signs message with the wallet-held key. For a fixed private
	// key and message the returned bytes are identical on every call.
	Sign(ctx context.Context, message string) ([]byte, error)
}
