// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proof bridges plaintext passwords to a zero-knowledge circuit
// that attests "this password satisfies the strength policy" without
// revealing the password.
//
// The policy is fixed and must match the in-circuit arithmetic exactly:
// minimum length 12 and at least 3 of 4 character classes (uppercase,
// lowercase, digits, the symbol set below). The circuit carries the
// password as a fixed 24-byte array plus an explicit true-length witness;
// padding bytes beyond the true length are masked out of the class scan,
// and the length criterion is evaluated against the true length, never
// the padded size.
package proof

import (
	"fmt"
	"strings"
)

const (
	// MinPasswordLength is the policy's length floor, measured against
	// the true password length.
	MinPasswordLength = 12

	// MaxPasswordBytes is the circuit's fixed witness-array size.
	// Passwords longer than this cannot be proven and are rejected at
	// the encoding boundary.
	MaxPasswordBytes = 24

	// MinCharacterClasses is how many of the four classes must appear.
	MinCharacterClasses = 3

	// SymbolSet is the fixed set of bytes counted as the symbol class.
	SymbolSet = "!@#$%^&*()-_=+[]{}|;:,.<>?/"
)

// EvaluatePolicy is the plain-Go mirror of the circuit's policy
// arithmetic, used for pre-flight checks before spending prover time. It
// must agree with StrengthCircuit bit for bit; the circuit is the
// authority, this is the cheap copy.
func EvaluatePolicy(password []byte) bool {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordBytes {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, b := range password {
		switch {
		case b >= 'A' && b <= 'Z':
			upper = true
		case b >= 'a' && b <= 'z':
			lower = true
		case b >= '0' && b <= '9':
			digit = true
		case strings.IndexByte(SymbolSet, b) >= 0:
			symbol = true
		}
	}

	classes := 0
	for _, present := range []bool{upper, lower, digit, symbol} {
		if present {
			classes++
		}
	}
	return classes >= MinCharacterClasses
}

// EncodeWitness lays a password into the circuit's fixed-size byte array
// and returns the zero-padded array plus the true length. Passwords longer
// than MaxPasswordBytes fail with ErrProofGeneration: the circuit cannot
// carry them, truncating would prove a different password.
func EncodeWitness(password []byte) ([MaxPasswordBytes]byte, int, error) {
	var padded [MaxPasswordBytes]byte
	if len(password) > MaxPasswordBytes {
		return padded, 0, fmt.Errorf("%w: password is %d bytes, circuit carries at most %d",
			ErrProofGeneration, len(password), MaxPasswordBytes)
	}
	copy(padded[:], password)
	return padded, len(password), nil
}
