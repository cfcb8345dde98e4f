// README: Raw HTTP invoker for the generative-language API; one POST per call, no retries.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CallSpec fully describes one upstream call. It is a plain value so request
// construction stays pure and inspectable in tests; the method is always POST.
type CallSpec struct {
	URL  string
	Body any
}

// Invoker performs the effectful upstream call described by a CallSpec and
// returns the raw JSON response body. Implementations must not retry.
type Invoker interface {
	Invoke(ctx context.Context, spec CallSpec) (json.RawMessage, error)
}

// UpstreamError reports a failed upstream call: a non-2xx status, a transport
// failure, or an unreadable response body.
type UpstreamError struct {
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	return "upstream: " + e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// httpClient is shared by all calls; the 30s timeout guards against stalled
// connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Client is the production Invoker. The API key travels in a header so it
// never appears in URLs or logs.
type Client struct {
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// upstreamErrorBody matches the API's standard error envelope.
type upstreamErrorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Invoke issues a single JSON POST. Non-2xx statuses are mapped to
// *UpstreamError carrying the upstream-supplied message when one is present.
func (c *Client) Invoke(ctx context.Context, spec CallSpec) (json.RawMessage, error) {
	payload, err := json.Marshal(spec.Body)
	if err != nil {
		return nil, fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, spec.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error(), cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Message: "read response: " + err.Error(), cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb upstreamErrorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != nil && eb.Error.Message != "" {
			return nil, &UpstreamError{Message: eb.Error.Message}
		}
		return nil, &UpstreamError{Message: fmt.Sprintf("API request failed with status %d", resp.StatusCode)}
	}

	return json.RawMessage(body), nil
}
