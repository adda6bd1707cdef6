package proof

import (
	"context"
	"errors"
	"testing"
)

func TestFakeBackend_ProveAndVerify(t *testing.T) {
	backend := NewFakeBackend()
	ctx := context.Background()

	sp, err := backend.GenerateProof(ctx, []byte("Password1234"))
	if err != nil {
		t.Fatalf("GenerateProof error: %v", err)
	}
	if !sp.MeetsPolicy() {
		t.Fatalf("expected public outputs to encode meets-policy for a compliant password")
	}

	ok, err := backend.VerifyProof(ctx, sp)
	if err != nil {
		t.Fatalf("VerifyProof error: %v", err)
	}
	if !ok {
		t.Fatalf("expected proof to verify")
	}
}

func TestFakeBackend_NonCompliantPasswordProvesFalse(t *testing.T) {
	backend := NewFakeBackend()
	ctx := context.Background()

	sp, err := backend.GenerateProof(ctx, []byte("password1234")) // lower+digit, 2 classes
	if err != nil {
		t.Fatalf("GenerateProof error: %v", err)
	}
	if sp.MeetsPolicy() {
		t.Fatalf("two-class password must not meet policy")
	}

	// The proof still verifies; it proves non-compliance.
	ok, err := backend.VerifyProof(ctx, sp)
	if err != nil {
		t.Fatalf("VerifyProof error: %v", err)
	}
	if !ok {
		t.Fatalf("expected non-compliance proof to verify")
	}
}

func TestFakeBackend_TamperedProofRejected(t *testing.T) {
	backend := NewFakeBackend()
	ctx := context.Background()

	sp, err := backend.GenerateProof(ctx, []byte("Password1234"))
	if err != nil {
		t.Fatalf("GenerateProof error: %v", err)
	}

	sp.Proof[0] ^= 0x01
	ok, err := backend.VerifyProof(ctx, sp)
	if err != nil {
		t.Fatalf("VerifyProof error: %v", err)
	}
	if ok {
		t.Fatalf("tampered proof must not verify")
	}

	// Flipping the claimed output without re-proving must also fail.
	sp.Proof[0] ^= 0x01
	sp.PublicOutputs[31] ^= 0x01
	ok, err = backend.VerifyProof(ctx, sp)
	if err != nil {
		t.Fatalf("VerifyProof error: %v", err)
	}
	if ok {
		t.Fatalf("flipped public output must not verify")
	}
}

func TestFakeBackend_MalformedPublicOutputs(t *testing.T) {
	backend := NewFakeBackend()
	ctx := context.Background()

	sp, err := backend.GenerateProof(ctx, []byte("Password1234"))
	if err != nil {
		t.Fatalf("GenerateProof error: %v", err)
	}

	sp.PublicOutputs = sp.PublicOutputs[:16]
	if _, err := backend.VerifyProof(ctx, sp); !errors.Is(err, ErrProofVerification) {
		t.Fatalf("short outputs: error = %v, want ErrProofVerification", err)
	}
}

func TestFakeBackend_OversizedPassword(t *testing.T) {
	backend := NewFakeBackend()

	_, err := backend.GenerateProof(context.Background(), make([]byte, MaxPasswordBytes+1))
	if !errors.Is(err, ErrProofGeneration) {
		t.Fatalf("oversized password: error = %v, want ErrProofGeneration", err)
	}
}

// Exercises the real Groth16 backend end to end: compile, setup, prove,
// verify. Slow (seconds), so it hides behind -short.
func TestGnarkBackend_ProveAndVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping groth16 setup/prove in -short mode")
	}

	backend, err := NewGnarkBackend()
	if err != nil {
		t.Fatalf("NewGnarkBackend error: %v", err)
	}
	ctx := context.Background()

	for _, tt := range []struct {
		password string
		meets    bool
	}{
		{"Password1234", true},
		{"password1234", false},
		{"Tr0ub4dor&3xtra!", true},
	} {
		sp, err := backend.GenerateProof(ctx, []byte(tt.password))
		if err != nil {
			t.Fatalf("GenerateProof(%q) error: %v", tt.password, err)
		}
		if sp.MeetsPolicy() != tt.meets {
			t.Fatalf("GenerateProof(%q) public output = %v, want %v", tt.password, sp.MeetsPolicy(), tt.meets)
		}

		ok, err := backend.VerifyProof(ctx, sp)
		if err != nil {
			t.Fatalf("VerifyProof(%q) error: %v", tt.password, err)
		}
		if !ok {
			t.Fatalf("VerifyProof(%q) = false, want true", tt.password)
		}

		// A verifier that flips the claimed output must be refused.
		sp.PublicOutputs[31] ^= 0x01
		ok, err = backend.VerifyProof(ctx, sp)
		if err != nil {
			t.Fatalf("VerifyProof(%q, flipped) error: %v", tt.password, err)
		}
		if ok {
			t.Fatalf("VerifyProof(%q) accepted a flipped public output", tt.password)
		}
	}
}
