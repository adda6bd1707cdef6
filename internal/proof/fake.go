package proof

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/models"
)

// fakeProofDomain keys the fake backend's pseudo-proofs so they cannot
// collide with anything else hashed in the system.
const fakeProofDomain = "chain-vault/fake-strength-proof/v1"

// FakeBackend is the deterministic test double for [ProvingBackend]. The
// "proof" is a hash over the public outputs under a fixed domain string:
// verifiable without the password, trivially forgeable, and therefore
// strictly for tests and local development.
type FakeBackend struct {
	// FailGeneration forces GenerateProof to fail, for error-path tests.
	FailGeneration bool
}

// NewFakeBackend constructs a [FakeBackend].
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{}
}

// GenerateProof implements [ProvingBackend].
func (f *FakeBackend) GenerateProof(ctx context.Context, password []byte) (models.StrengthProof, error) {
	if err := ctx.Err(); err != nil {
		return models.StrengthProof{}, fmt.Errorf("%w: %w", ErrProofGeneration, err)
	}
	if f.FailGeneration {
		return models.StrengthProof{}, fmt.Errorf("%w: fake backend failure", ErrProofGeneration)
	}

	if _, _, err := EncodeWitness(password); err != nil {
		return models.StrengthProof{}, err
	}

	meets := 0
	if EvaluatePolicy(password) {
		meets = 1
	}
	outputs := encodePublicOutput(meets)

	return models.StrengthProof{
		Proof:         crypto.Hash([]byte(fakeProofDomain), outputs),
		PublicOutputs: outputs,
	}, nil
}

// VerifyProof implements [ProvingBackend].
func (f *FakeBackend) VerifyProof(ctx context.Context, sp models.StrengthProof) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrProofVerification, err)
	}

	if _, err := decodePublicOutput(sp.PublicOutputs); err != nil {
		return false, err
	}

	expected := crypto.Hash([]byte(fakeProofDomain), sp.PublicOutputs)
	return bytes.Equal(expected, sp.Proof), nil
}
