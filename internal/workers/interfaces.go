// Package workers runs the vault's background jobs: today that is the
// strength-proof generator, which keeps slow Groth16 proving off the
// interactive seal path.
package workers

import (
	"context"

	"github.com/MKhiriev/chain-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// StrengthProver generates a strength proof for one password. Satisfied
// by proof.ProvingBackend.
type StrengthProver interface {
	GenerateProof(ctx context.Context, password []byte) (models.StrengthProof, error)
}

// ProofJob accepts proof requests and serves them from a background
// goroutine, one at a time.
type ProofJob interface {
	// Start launches the worker goroutine. Calling Start on a running
	// job restarts it.
	Start(ctx context.Context)

	// Submit enqueues a password for proving and returns the channel the
	// single result will be delivered on. The channel is closed after
	// delivery. Submit fails with ErrJobStopped when the worker is not
	// running or the queue is full.
	Submit(password []byte) (<-chan ProofResult, error)

	// Stop cancels the worker and blocks until it has drained. Pending
	// requests receive ErrJobStopped. Safe to call when not running.
	Stop()
}

// ProofResult is the outcome of one submitted proof request.
type ProofResult struct {
	Proof models.StrengthProof
	Err   error
}
