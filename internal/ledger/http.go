// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/models"
)

// HTTPRegistryConfig configures the HTTP [CommitmentRegistry] client.
type HTTPRegistryConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Wire shapes. Commitments travel hex-encoded; the client decodes on read
// so the rest of the system only ever sees raw 32-byte commitments.
type (
	recordRequest struct {
		EntryIndex uint64 `json:"entry_index"`
		Commitment string `json:"commitment"`
		ContentRef string `json:"content_ref"`
	}

	recordResponse struct {
		TxHandle string `json:"tx_handle"`
	}

	entryPayload struct {
		EntryIndex uint64 `json:"entry_index"`
		Commitment string `json:"commitment"`
		ContentRef string `json:"content_ref"`
	}
)

// httpRegistry implements [CommitmentRegistry] over the dev registry
// server's REST surface (or anything wire-compatible with it).
type httpRegistry struct {
	client *resty.Client
}

// NewHTTPRegistry constructs an HTTP-backed [CommitmentRegistry].
func NewHTTPRegistry(cfg HTTPRegistryConfig) CommitmentRegistry {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRegistry{client: cli}
}

// RecordCommitment implements [CommitmentRegistry].
func (h *httpRegistry) RecordCommitment(ctx context.Context, ownerID string, entryIndex uint64, commitment []byte, contentRef string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recordRequest{
			EntryIndex: entryIndex,
			Commitment: hex.EncodeToString(commitment),
			ContentRef: contentRef,
		}).
		Post("/api/v1/owners/" + ownerID + "/commitments")
	if err != nil {
		return "", fmt.Errorf("%w: record request: %w", ErrTransport, err)
	}
	if err := mapRegistryError(resp); err != nil {
		return "", err
	}

	var body recordResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode record response: %w", ErrTransport, err)
	}
	return body.TxHandle, nil
}

// LatestEntries implements [CommitmentRegistry].
func (h *httpRegistry) LatestEntries(ctx context.Context, ownerID string) ([]models.LedgerEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/v1/owners/" + ownerID + "/commitments")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrTransport, err)
	}
	if err := mapRegistryError(resp); err != nil {
		return nil, err
	}

	var payload []entryPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode entries: %w", ErrTransport, err)
	}

	entries := make([]models.LedgerEntry, 0, len(payload))
	for _, p := range payload {
		commitment, err := crypto.DecodeCommitmentHex(p.Commitment)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrTransport, p.EntryIndex, err)
		}
		entries = append(entries, models.LedgerEntry{
			OwnerID:    ownerID,
			EntryIndex: p.EntryIndex,
			Commitment: commitment,
			ContentRef: p.ContentRef,
		})
	}
	return entries, nil
}

func mapRegistryError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrIndexConflict, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}
}
