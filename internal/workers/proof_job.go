// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/chain-vault/internal/crypto"
)

// ErrJobStopped indicates a request submitted while the worker is not
// accepting work.
var ErrJobStopped = errors.New("proof job is not running")

const defaultQueueSize = 16

type proofRequest struct {
	password []byte
	result   chan ProofResult
}

type proofJob struct {
	prover    StrengthProver
	queueSize int

	mu     sync.Mutex
	cancel context.CancelFunc
	queue  chan proofRequest
	wg     sync.WaitGroup
}

// NewProofJob creates a ProofJob over the given prover. queueSize bounds
// the number of pending requests; zero or negative means the default.
// The job is idle until Start is called.
func NewProofJob(prover StrengthProver, queueSize int) ProofJob {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &proofJob{prover: prover, queueSize: queueSize}
}

// Start implements ProofJob. It stops any previously running worker, then
// launches a goroutine that serves queued requests until ctx is cancelled
// or Stop is called.
func (j *proofJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.queue = make(chan proofRequest, j.queueSize)
	queue := j.queue
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				j.drain(queue)
				return
			case req := <-queue:
				proof, err := j.prover.GenerateProof(jobCtx, req.password)
				crypto.Zeroize(req.password)
				req.result <- ProofResult{Proof: proof, Err: err}
				close(req.result)
			}
		}
	}()
}

// Submit implements ProofJob. The enqueue happens under the mutex so that
// Stop cannot retire the queue between the running check and the send,
// which would strand the request in a channel no worker reads.
func (j *proofJob) Submit(password []byte) (<-chan ProofResult, error) {
	req := proofRequest{
		password: append([]byte(nil), password...),
		result:   make(chan ProofResult, 1),
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.queue == nil {
		crypto.Zeroize(req.password)
		return nil, ErrJobStopped
	}
	select {
	case j.queue <- req:
		return req.result, nil
	default:
		crypto.Zeroize(req.password)
		return nil, ErrJobStopped
	}
}

// Stop implements ProofJob.
func (j *proofJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.queue = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// drain fails every request still queued at shutdown.
func (j *proofJob) drain(queue chan proofRequest) {
	for {
		select {
		case req := <-queue:
			crypto.Zeroize(req.password)
			req.result <- ProofResult{Err: ErrJobStopped}
			close(req.result)
		default:
			return
		}
	}
}
