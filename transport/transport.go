// Package transport is the HTTP fetch layer shared by the NHL and MoneyPuck
// connectors. It performs plain GET requests and reports non-2xx statuses as
// UpstreamError; everything above it only ever sees bytes or an error.
package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "nhldata/1.0"

// UpstreamError is returned when the upstream API answers with a non-2xx
// status. The status code and response body are preserved for the caller.
type UpstreamError struct {
	URL    string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GET %s failed: %d body=%s", e.URL, e.Status, e.Body)
}

// Client performs GET requests against the upstream APIs.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
	}
}

// Get fetches url and returns the raw response body. A non-2xx status is
// reported as *UpstreamError without any further interpretation of the body.
func (c *Client) Get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{URL: url, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
