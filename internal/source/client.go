package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// Client fetches grant payloads from configured sources over HTTP with
// retries and exponential backoff.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		httpClient: &http.Client{Transport: transport},
	}
}

// shouldRetry reports whether an error or status code is worth another
// attempt.
func shouldRetry(err error, statusCode int) bool {
	if err != nil {
		if netErr, ok := err.(interface{ Timeout() bool }); ok && netErr.Timeout() {
			return true
		}
		return false
	}
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Fetch retrieves and decodes one source's grant payload. Retries use
// exponential backoff with jitter: 0.5s, 1s, 2s...
func (c *Client) Fetch(ctx context.Context, src SourceConfig) (*FetchResult, error) {
	timeout := time.Duration(src.Fetch.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= src.Fetch.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(500*(1<<uint(attempt-1))) * time.Millisecond
			jitter := time.Duration(rand.Intn(100)) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		result, retryable, err := c.fetchOnce(ctx, src, timeout)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("source %s: max retries exceeded: %w", src.ID, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, src SourceConfig, timeout time.Duration) (*FetchResult, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "grant-tracker/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, shouldRetry(err, 0), fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, shouldRetry(nil, resp.StatusCode), fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response: %w", err)
	}

	grants, totals, err := decodePayload(body)
	if err != nil {
		return nil, false, fmt.Errorf("source %s: %w", src.ID, err)
	}

	return &FetchResult{
		SourceID:  src.ID,
		Grants:    grants,
		Totals:    totals,
		FetchedAt: time.Now().UTC(),
	}, false, nil
}

// decodePayload accepts either the envelope shape or a bare grant array.
func decodePayload(body []byte) ([]RawGrant, *LegacyTotals, error) {
	var envelope grantEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Grants != nil {
		return envelope.Grants, envelope.Totals, nil
	}

	var bare []RawGrant
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil, nil
	}

	return nil, nil, fmt.Errorf("payload is neither a grant envelope nor a grant array")
}
