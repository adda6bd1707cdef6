// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/chain-vault/internal/proof"
	"github.com/MKhiriev/chain-vault/models"
)

func awaitResult(t *testing.T, ch <-chan ProofResult) ProofResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for proof result")
		return ProofResult{}
	}
}

func TestProofJob_SubmitAndReceive(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)
	job.Start(context.Background())
	defer job.Stop()

	ch, err := job.Submit([]byte("Password123!"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	res := awaitResult(t, ch)
	if res.Err != nil {
		t.Fatalf("proof generation: %v", res.Err)
	}
	if !res.Proof.MeetsPolicy() {
		t.Error("expected a compliant public output for a strong password")
	}
}

func TestProofJob_WeakPasswordStillProves(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)
	job.Start(context.Background())
	defer job.Stop()

	ch, err := job.Submit([]byte("weak"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	res := awaitResult(t, ch)
	if res.Err != nil {
		t.Fatalf("proof generation: %v", res.Err)
	}
	if res.Proof.MeetsPolicy() {
		t.Error("expected a non-compliant public output for a weak password")
	}
}

func TestProofJob_GenerationFailurePropagates(t *testing.T) {
	backend := proof.NewFakeBackend()
	backend.FailGeneration = true

	job := NewProofJob(backend, 4)
	job.Start(context.Background())
	defer job.Stop()

	ch, err := job.Submit([]byte("Password123!"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	res := awaitResult(t, ch)
	if !errors.Is(res.Err, proof.ErrProofGeneration) {
		t.Errorf("expected ErrProofGeneration, got %v", res.Err)
	}
}

func TestProofJob_SubmitBeforeStart(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)

	if _, err := job.Submit([]byte("pw")); !errors.Is(err, ErrJobStopped) {
		t.Errorf("expected ErrJobStopped, got %v", err)
	}
}

func TestProofJob_SubmitAfterStop(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)
	job.Start(context.Background())
	job.Stop()

	if _, err := job.Submit([]byte("pw")); !errors.Is(err, ErrJobStopped) {
		t.Errorf("expected ErrJobStopped, got %v", err)
	}
}

func TestProofJob_StopIsIdempotent(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)

	// Stop on a job that never started must not panic or block.
	job.Stop()
	job.Stop()

	job.Start(context.Background())
	job.Stop()
	job.Stop()
}

func TestProofJob_RestartServesNewRequests(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 4)

	job.Start(context.Background())
	job.Stop()
	job.Start(context.Background())
	defer job.Stop()

	ch, err := job.Submit([]byte("Password123!"))
	if err != nil {
		t.Fatalf("Submit after restart: %v", err)
	}
	if res := awaitResult(t, ch); res.Err != nil {
		t.Fatalf("proof generation after restart: %v", res.Err)
	}
}

// capturingProver records the password slice handed to the backend so
// tests can observe what the worker does with it afterwards.
type capturingProver struct {
	backend StrengthProver

	mu   sync.Mutex
	seen [][]byte
}

func (p *capturingProver) GenerateProof(ctx context.Context, password []byte) (models.StrengthProof, error) {
	p.mu.Lock()
	p.seen = append(p.seen, password)
	p.mu.Unlock()
	return p.backend.GenerateProof(ctx, password)
}

func TestProofJob_PasswordWipedAfterProving(t *testing.T) {
	prover := &capturingProver{backend: proof.NewFakeBackend()}
	job := NewProofJob(prover, 4)
	job.Start(context.Background())
	defer job.Stop()

	ch, err := job.Submit([]byte("Password123!"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res := awaitResult(t, ch); res.Err != nil {
		t.Fatalf("proof generation: %v", res.Err)
	}

	prover.mu.Lock()
	defer prover.mu.Unlock()
	if len(prover.seen) != 1 {
		t.Fatalf("expected one proving call, got %d", len(prover.seen))
	}
	for i, b := range prover.seen[0] {
		if b != 0 {
			t.Fatalf("password byte %d not wiped after proving", i)
		}
	}
}

func TestProofJob_PasswordWipedAtShutdownDrain(t *testing.T) {
	prover := &capturingProver{backend: proof.NewFakeBackend()}
	job := NewProofJob(prover, 4)
	job.Start(context.Background())

	ch, err := job.Submit([]byte("Password123!"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	job.Stop()

	// Whether the worker served the request or the drain failed it, the
	// channel must resolve and the caller's password copy must not linger.
	res := awaitResult(t, ch)
	if res.Err != nil && !errors.Is(res.Err, ErrJobStopped) {
		t.Fatalf("unexpected result error: %v", res.Err)
	}
}

func TestProofJob_ConcurrentStopResolvesAcceptedSubmissions(t *testing.T) {
	for round := 0; round < 50; round++ {
		job := NewProofJob(proof.NewFakeBackend(), 4)
		job.Start(context.Background())

		accepted := make(chan (<-chan ProofResult), 4)
		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ch, err := job.Submit([]byte("Password123!"))
				if err != nil {
					return
				}
				accepted <- ch
			}()
		}
		go job.Stop()

		wg.Wait()
		job.Stop()
		close(accepted)

		// Every submission that was accepted must resolve, either with a
		// proof or with ErrJobStopped from the shutdown drain. A channel
		// that never resolves means the request was lost.
		for ch := range accepted {
			res := awaitResult(t, ch)
			if res.Err != nil && !errors.Is(res.Err, ErrJobStopped) {
				t.Fatalf("round %d: unexpected result error: %v", round, res.Err)
			}
		}
	}
}

func TestProofJob_SequentialRequestsAllServed(t *testing.T) {
	job := NewProofJob(proof.NewFakeBackend(), 8)
	job.Start(context.Background())
	defer job.Stop()

	channels := make([]<-chan ProofResult, 0, 5)
	for i := 0; i < 5; i++ {
		ch, err := job.Submit([]byte("Password123!"))
		if err != nil {
			t.Fatalf("Submit #%d: %v", i, err)
		}
		channels = append(channels, ch)
	}

	for i, ch := range channels {
		if res := awaitResult(t, ch); res.Err != nil {
			t.Errorf("request #%d: %v", i, res.Err)
		}
	}
}
