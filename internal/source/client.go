package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second

	// Upstream payloads are bounded reads so a misbehaving source cannot
	// exhaust memory. The full character collection is well under this.
	maxBodyBytes = 8 << 20
)

// RemoteError reports a non-2xx response from an upstream API.
type RemoteError struct {
	Endpoint string
	Status   int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote fetch failed: endpoint=%s status=%d", e.Endpoint, e.Status)
}

// DecodeError reports a payload that could not be decoded into the
// expected type.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: endpoint=%s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client is a minimal JSON GET client bound to one base URL.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client for the given base URL. A zero timeout falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NewClientWithTransport creates a client with an injected transport, used
// by tests to stub the network.
func NewClientWithTransport(baseURL string, rt http.RoundTripper) *Client {
	c := NewClient(baseURL, defaultTimeout)
	c.http.Transport = rt
	return c
}

// Get issues a single GET against the relative endpoint and decodes the
// JSON body into out.
func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &RemoteError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}
