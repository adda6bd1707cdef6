// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// devWallet signs with a locally held secp256k1 key, EIP-191 personal
// message style, the same shape a browser wallet produces. go-ethereum
// signs with a deterministic nonce, so the same key and message always
// yield the same 65-byte signature, which is exactly the property the
// key-derivation path depends on.
//
// Development and test use only. A production deployment fronts a real
// wallet behind the same [Signer] interface.
type devWallet struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewDevWallet constructs a [Signer] from a hex-encoded secp256k1 private
// key ("0x" prefix optional).
func NewDevWallet(privateKeyHex string) (Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	key, err := ethcrypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse wallet private key: %w", err)
	}

	return &devWallet{
		key:     key,
		address: ethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// Address implements [Signer].
func (w *devWallet) Address() string {
	return w.address
}

// Sign implements [Signer]. It hashes message with the EIP-191 personal
// message prefix and signs the digest. The context is honoured before
// signing so an abandoned flow never produces a signature.
func (w *devWallet) Sign(ctx context.Context, message string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignatureDeclined, err)
	}

	sig, err := ethcrypto.Sign(accounts.TextHash([]byte(message)), w.key)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	return sig, nil
}
