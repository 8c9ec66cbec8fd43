package viegrand

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond

	headerIdempotencyKey = "Idempotency-Key"

	maxResponseBytes = 1 << 20
)

// Client is the HTTP wrapper for the VieGrand backend REST API.
type Client struct {
	baseURL       string
	accessToken   string
	retryAttempts int
	retryDelay    time.Duration
	httpClient    *http.Client
}

// NewClient creates a new backend client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		accessToken:   cfg.AccessToken,
		retryAttempts: attempts,
		retryDelay:    delay,
		httpClient:    httpClient,
	}, nil
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

// do sends req, retrying transport failures and 5xx answers with linear
// backoff, and decodes the envelope's data into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var payload []byte
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", req.method, req.path, err)
		}
		payload = b
	}

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.doOnce(ctx, req, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, req request, payload []byte, out any) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &transportError{op: req.method + " " + req.path, err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read viegrand %s %s response: %w", req.method, req.path, err)
	}
	if len(raw) > maxResponseBytes {
		return fmt.Errorf("%w: %s %s", ErrResponseTooLarge, req.method, req.path)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode viegrand %s %s response: %w", req.method, req.path, decodeErr)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode viegrand %s %s data: %w", req.method, req.path, err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	var tErr *transportError
	return errors.As(err, &tErr)
}
