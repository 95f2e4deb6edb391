package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client posts JSON payloads to arbitrary webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook client using the transport's default timeouts.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// Post sends one JSON POST to url. If the server answered at all, a Response
// is returned regardless of status code; the error return is reserved for
// transport-level failures (DNS, refused connection, timeout).
func (c *Client) Post(ctx context.Context, url string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	// Body is diagnostic-only; a read failure does not fail the call.
	raw, _ := io.ReadAll(resp.Body)

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       raw,
	}, nil
}
