// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
)

// IPFSStoreConfig configures the IPFS-backed [ContentStore].
type IPFSStoreConfig struct {
	// Endpoint is the address of the IPFS HTTP API (host:port or
	// multiaddr). Defaults to the local daemon.
	Endpoint string

	// Timeout bounds every shell call. A missing CID otherwise blocks on
	// DAG resolution indefinitely.
	Timeout time.Duration
}

// ipfsStore implements [ContentStore] over the go-ipfs-api shell.
type ipfsStore struct {
	shell *shell.Shell
}

// NewIPFSStore constructs an IPFS-backed [ContentStore] and verifies the
// daemon is reachable.
func NewIPFSStore(cfg IPFSStoreConfig) (ContentStore, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "127.0.0.1:5001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	sh := shell.NewShell(cfg.Endpoint)
	sh.SetTimeout(cfg.Timeout)

	if _, err := sh.ID(); err != nil {
		return nil, fmt.Errorf("%w: connect to ipfs daemon at %s: %w", ErrTransport, cfg.Endpoint, err)
	}

	return &ipfsStore{shell: sh}, nil
}

// Put implements [ContentStore]. The daemon computes the CID from the
// content, so identical uploads coalesce naturally; the adapter just hands
// back whatever reference the daemon returns.
func (s *ipfsStore) Put(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	cid, err := s.shell.Add(bytes.NewReader(data), shell.Pin(true))
	if err != nil {
		return "", fmt.Errorf("%w: ipfs add: %w", ErrTransport, err)
	}
	return cid, nil
}

// Get implements [ContentStore]. A CID the node cannot resolve within the
// shell timeout is reported as ErrNotFound; everything else is transport.
func (s *ipfsStore) Get(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	r, err := s.shell.Cat(ref)
	if err != nil {
		if isIPFSNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("%w: ipfs cat: %w", ErrTransport, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read ipfs content: %w", ErrTransport, err)
	}
	return data, nil
}

// isIPFSNotFound classifies shell errors that mean "this CID does not
// resolve" as opposed to a network blip. The daemon reports both invalid
// and missing CIDs through error text, so string matching is all there is.
func isIPFSNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "invalid path") ||
		strings.Contains(msg, "no link named") ||
		strings.Contains(msg, "context deadline exceeded")
}
