// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proof

import (
	"bytes"
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/MKhiriev/chain-vault/models"
)

//go:generate mockgen -source=backend.go -destination=../mock/proving_backend_mock.go -package=mock

// ProvingBackend is the ZK proving collaborator: witness in, opaque proof
// plus public outputs out. The concrete proof system (curve, field, proof
// byte layout) belongs to the implementation; everyone else treats the
// bytes as opaque.
type ProvingBackend interface {
	// GenerateProof proves that password meets the strength policy (or
	// provably does not: the public output can be 0). CPU-bound and
	// potentially slow; run it off any latency-sensitive path. Fails
	// with ErrProofGeneration on malformed input or backend failure.
	GenerateProof(ctx context.Context, password []byte) (models.StrengthProof, error)

	// VerifyProof checks a proof against its public outputs. Pure: no
	// secret material is needed, any third party can call it. Returns
	// false (not an error) for a proof that simply does not verify.
	VerifyProof(ctx context.Context, sp models.StrengthProof) (bool, error)
}

// gnarkBackend proves with Groth16 over BN254.
type gnarkBackend struct {
	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
	vk  groth16.VerifyingKey
}

// NewGnarkBackend compiles the strength circuit and runs the Groth16
// setup. The in-process setup is fine for development; a production
// deployment loads keys from a ceremony instead of generating them here.
func NewGnarkBackend() (ProvingBackend, error) {
	var circuit StrengthCircuit

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("%w: compile circuit: %w", ErrProofGeneration, err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("%w: groth16 setup: %w", ErrProofGeneration, err)
	}

	return &gnarkBackend{ccs: ccs, pk: pk, vk: vk}, nil
}

// GenerateProof implements [ProvingBackend].
func (b *gnarkBackend) GenerateProof(ctx context.Context, password []byte) (models.StrengthProof, error) {
	if err := ctx.Err(); err != nil {
		return models.StrengthProof{}, fmt.Errorf("%w: %w", ErrProofGeneration, err)
	}

	padded, length, err := EncodeWitness(password)
	if err != nil {
		return models.StrengthProof{}, err
	}

	meets := 0
	if EvaluatePolicy(password) {
		meets = 1
	}

	assignment := &StrengthCircuit{Length: length, MeetsPolicy: meets}
	for i := range padded {
		assignment.Password[i] = int(padded[i])
	}

	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return models.StrengthProof{}, fmt.Errorf("%w: build witness: %w", ErrProofGeneration, err)
	}

	grothProof, err := groth16.Prove(b.ccs, b.pk, witness)
	if err != nil {
		return models.StrengthProof{}, fmt.Errorf("%w: prove: %w", ErrProofGeneration, err)
	}

	var buf bytes.Buffer
	if _, err := grothProof.WriteTo(&buf); err != nil {
		return models.StrengthProof{}, fmt.Errorf("%w: serialize proof: %w", ErrProofGeneration, err)
	}

	return models.StrengthProof{
		Proof:         buf.Bytes(),
		PublicOutputs: encodePublicOutput(meets),
	}, nil
}

// VerifyProof implements [ProvingBackend].
func (b *gnarkBackend) VerifyProof(ctx context.Context, sp models.StrengthProof) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrProofVerification, err)
	}

	meets, err := decodePublicOutput(sp.PublicOutputs)
	if err != nil {
		return false, err
	}

	publicWitness, err := frontend.NewWitness(
		&StrengthCircuit{MeetsPolicy: meets},
		ecc.BN254.ScalarField(),
		frontend.PublicOnly(),
	)
	if err != nil {
		return false, fmt.Errorf("%w: build public witness: %w", ErrProofVerification, err)
	}

	grothProof := groth16.NewProof(ecc.BN254)
	if _, err := grothProof.ReadFrom(bytes.NewReader(sp.Proof)); err != nil {
		return false, fmt.Errorf("%w: decode proof: %w", ErrProofVerification, err)
	}

	if err := groth16.Verify(grothProof, b.vk, publicWitness); err != nil {
		// A proof that fails pairing checks is a negative verification
		// result, not a transport or input error.
		return false, nil
	}
	return true, nil
}

// encodePublicOutput packs the policy boolean as a 32-byte big-endian
// field element, the shape on-chain verifiers expect.
func encodePublicOutput(meets int) []byte {
	out := make([]byte, 32)
	out[31] = byte(meets)
	return out
}

// decodePublicOutput parses the 32-byte public output. Anything other
// than a canonical 0 or 1 is malformed.
func decodePublicOutput(raw []byte) (int, error) {
	if len(raw) != 32 {
		return 0, fmt.Errorf("%w: public outputs must be 32 bytes, got %d", ErrProofVerification, len(raw))
	}
	for _, b := range raw[:31] {
		if b != 0 {
			return 0, fmt.Errorf("%w: non-canonical public output", ErrProofVerification)
		}
	}
	if raw[31] > 1 {
		return 0, fmt.Errorf("%w: public output must encode a boolean", ErrProofVerification)
	}
	return int(raw[31]), nil
}
