// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// HTTPStoreConfig configures the pinning-gateway [ContentStore] client.
type HTTPStoreConfig struct {
	BaseURL string
	Timeout time.Duration

	// MaxRetries bounds the retry budget for transport failures. Zero
	// means the default of 3.
	MaxRetries uint64
}

// blobResponse is the gateway's success body. The gateway answers an
// upload with either "newly stored" (201) or "already pinned" (200,
// Duplicate set); both carry the reference and the client normalizes them
// to one value.
type blobResponse struct {
	Reference string `json:"reference"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// httpStore implements [ContentStore] against an HTTP pinning gateway.
type httpStore struct {
	client     *resty.Client
	maxRetries uint64
}

// NewHTTPStore constructs a gateway-backed [ContentStore].
func NewHTTPStore(cfg HTTPStoreConfig) ContentStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpStore{client: cli, maxRetries: cfg.MaxRetries}
}

// Put implements [ContentStore]. Transport failures are retried with
// fibonacci backoff inside the bounded retry budget; HTTP error statuses
// other than 5xx are not retried.
func (s *httpStore) Put(ctx context.Context, data []byte) (string, error) {
	var ref string

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(data).
			Post("/api/v1/blobs")
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: put request: %w", ErrTransport, err))
		}

		switch resp.StatusCode() {
		case http.StatusCreated, http.StatusOK:
			// 201 = newly stored, 200 = deduplicated. Same reference
			// either way.
			var body blobResponse
			if err := json.Unmarshal(resp.Body(), &body); err != nil {
				return fmt.Errorf("%w: decode put response: %w", ErrTransport, err)
			}
			if body.Reference == "" {
				return fmt.Errorf("%w: put response missing reference", ErrTransport)
			}
			ref = body.Reference
			return nil
		default:
			return mapStatusError(resp)
		}
	})
	if err != nil {
		return "", err
	}
	return ref, nil
}

// Get implements [ContentStore]. A 404 maps to ErrNotFound and is never
// retried; transport-level failures retry within the budget.
func (s *httpStore) Get(ctx context.Context, ref string) ([]byte, error) {
	var data []byte

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			Get("/api/v1/blobs/" + ref)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: get request: %w", ErrTransport, err))
		}

		if resp.StatusCode() == http.StatusOK {
			data = resp.Body()
			return nil
		}
		return mapStatusError(resp)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *httpStore) backoff() retry.Backoff {
	return retry.WithMaxRetries(s.maxRetries, retry.NewFibonacci(100*time.Millisecond))
}

// mapStatusError turns a non-success gateway response into the package's
// sentinel errors. 5xx is considered transient and marked retryable.
func mapStatusError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return retry.RetryableError(fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body))
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}
}
