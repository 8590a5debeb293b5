// Copyright (C) 2025 TrueLayer
//
// This file is part of payouts-api-signing-examples.
//
// payouts-api-signing-examples is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// payouts-api-signing-examples is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with payouts-api-signing-examples.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultSignatureHeader carries the detached JWS on Payouts API
	// requests
	DefaultSignatureHeader = "X-TL-Signature"

	// DefaultTimeout bounds a single request attempt when no custom
	// http.Client is supplied
	DefaultTimeout = 30 * time.Second
)

// Client submits signed payloads to the Payouts API. The payload
// travels as the raw request body; the detached JWS travels in a
// signature header so the verifier can reconstruct and check the full
// compact JWS.
type Client struct {
	endpoint        string
	accessToken     string
	signatureHeader string
	httpClient      *http.Client
	maxRetries      uint64
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient injects a custom *http.Client. Timeout and transport
// behaviour belong here, never in the signing path.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithSignatureHeader overrides the header name carrying the detached
// JWS
func WithSignatureHeader(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.signatureHeader = name
		}
	}
}

// WithRetries enables exponential-backoff retries for transport
// errors and 5xx responses, up to max additional attempts. The test
// endpoint is idempotent, so re-submitting the same signed request is
// safe.
func WithRetries(max uint64) Option {
	return func(c *Client) {
		c.maxRetries = max
	}
}

// NewClient creates a Payouts API submission client for the given
// endpoint and bearer access token.
func NewClient(endpoint, accessToken string, opts ...Option) *Client {
	c := &Client{
		endpoint:        endpoint,
		accessToken:     accessToken,
		signatureHeader: DefaultSignatureHeader,
		httpClient:      &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Result is the terminal outcome of a submission. Non-2xx responses
// are reported here rather than as Go errors: an HTTP rejection is a
// well-formed answer from the API, not a transport failure.
type Result struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Success reports whether the API accepted the request
func (r *Result) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Submit POSTs payload to the configured endpoint with the detached
// JWS in the signature header.
//
// The payload bytes are sent verbatim; they must be the same bytes the
// JWS was built over or the verifier will reject the signature. With
// retries enabled, transport errors and 5xx responses are retried with
// exponential backoff; 4xx responses are returned immediately since
// resubmitting an unchanged request cannot fix them.
func (c *Client) Submit(ctx context.Context, payload []byte, detachedJWS string) (*Result, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if detachedJWS == "" {
		return nil, fmt.Errorf("detached JWS cannot be empty")
	}

	var lastServerError *Result

	operation := func() (*Result, error) {
		result, err := c.post(ctx, payload, detachedJWS)
		if err != nil {
			return nil, err
		}

		if result.StatusCode >= http.StatusInternalServerError {
			lastServerError = result
			return nil, fmt.Errorf("server error: %s", result.Status)
		}

		return result, nil
	}

	result, err := backoff.RetryWithData(operation, backoff.WithContext(c.newBackOff(), ctx))
	if err != nil {
		// Retries exhausted on 5xx: the response is still an answer
		// from the API, so hand it back as a Result.
		if lastServerError != nil {
			return lastServerError, nil
		}
		return nil, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}

	return result, nil
}

// post performs a single submission attempt
func (c *Client) post(ctx context.Context, payload []byte, detachedJWS string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set(c.signatureHeader, detachedJWS)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}, nil
}

func (c *Client) newBackOff() backoff.BackOff {
	if c.maxRetries == 0 {
		return &backoff.StopBackOff{}
	}
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)
}
