// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proof

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/cmp"
)

// StrengthCircuit proves that a password satisfies the strength policy
// without revealing it.
//
// What remains PRIVATE (hidden from verifiers):
//   - the password bytes, carried as a fixed 24-byte array;
//   - the true password length.
//
// What is PUBLIC (visible to verifiers):
//   - MeetsPolicy, a single 0/1 field element.
//
// Padding handling: positions at or beyond Length are masked out of every
// character-class flag, so zero padding bytes can never register as a
// class. The length criterion compares Length itself against the policy
// floor, never the padded array size.
type StrengthCircuit struct {
	// Password is the password laid into the fixed-size witness array,
	// zero-padded past Length.
	Password [MaxPasswordBytes]frontend.Variable `gnark:",secret"`

	// Length is the true password length, 0..MaxPasswordBytes.
	Length frontend.Variable `gnark:",secret"`

	// MeetsPolicy is the circuit's public output: 1 when the password
	// meets the policy, 0 otherwise.
	MeetsPolicy frontend.Variable `gnark:",public"`
}

// Define implements frontend.Circuit. The policy arithmetic here must
// agree with EvaluatePolicy exactly.
func (c *StrengthCircuit) Define(api frontend.API) error {
	// All compared values live in [0, 256], so a bounded comparator with
	// that diff bound covers every comparison below.
	comparator := cmp.NewBoundedComparator(api, big.NewInt(256), false)

	// Length must fit the witness array.
	api.AssertIsLessOrEqual(c.Length, MaxPasswordBytes)

	var upperSum, lowerSum, digitSum, symbolSum frontend.Variable = 0, 0, 0, 0

	for i := 0; i < MaxPasswordBytes; i++ {
		b := c.Password[i]

		// Range-check the byte; ToBinary constrains b < 2^8.
		api.ToBinary(b, 8)

		// mask = 1 iff this position holds a real password byte.
		mask := comparator.IsLess(i, c.Length)

		upper := api.Mul(comparator.IsLess('A'-1, b), comparator.IsLess(b, 'Z'+1))
		lower := api.Mul(comparator.IsLess('a'-1, b), comparator.IsLess(b, 'z'+1))
		digit := api.Mul(comparator.IsLess('0'-1, b), comparator.IsLess(b, '9'+1))

		// Symbol membership: b is in the set iff the product of all
		// (b - symbol) differences vanishes.
		var diffProduct frontend.Variable = 1
		for _, sym := range []byte(SymbolSet) {
			diffProduct = api.Mul(diffProduct, api.Sub(b, int(sym)))
		}
		symbol := api.IsZero(diffProduct)

		upperSum = api.Add(upperSum, api.Mul(upper, mask))
		lowerSum = api.Add(lowerSum, api.Mul(lower, mask))
		digitSum = api.Add(digitSum, api.Mul(digit, mask))
		symbolSum = api.Add(symbolSum, api.Mul(symbol, mask))
	}

	// Class presence flags: 1 iff any masked byte hit the class.
	upperPresent := api.Sub(1, api.IsZero(upperSum))
	lowerPresent := api.Sub(1, api.IsZero(lowerSum))
	digitPresent := api.Sub(1, api.IsZero(digitSum))
	symbolPresent := api.Sub(1, api.IsZero(symbolSum))

	classCount := api.Add(api.Add(upperPresent, lowerPresent), api.Add(digitPresent, symbolPresent))

	classOK := comparator.IsLess(MinCharacterClasses-1, classCount)
	lengthOK := comparator.IsLess(MinPasswordLength-1, c.Length)

	api.AssertIsEqual(c.MeetsPolicy, api.Mul(lengthOK, classOK))
	return nil
}
