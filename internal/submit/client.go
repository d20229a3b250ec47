// Package submit talks to the document-generation service: an OPTIONS
// availability probe followed by a JSON POST of the completed record.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/voiceintake/internal/logger"
)

// maxBodyBytes caps how much of an error response is kept for display.
const maxBodyBytes = 4096

// Response is the outcome of a POST that reached the server.
type Response struct {
	StatusCode int
	Status     string // status text without the code, e.g. "Internal Server Error"
	Body       string
}

// OK reports whether the status is 2xx.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client performs the two network calls of a submission. It does not retry
// and does not interpret status codes beyond reporting them.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client requests are sent through. The
// client is copied, so later options never modify the caller's value.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	hc := *c.http
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.http = &hc
	return c
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Probe sends a bodiless OPTIONS request. Any HTTP response, whatever its
// status, counts as the service being up; only transport failures error.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("building probe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	logger.Debug("Probe %s answered %d", c.endpoint, resp.StatusCode)
	return nil
}

// Send posts the record as JSON with the sendEmail flag merged in. A non-nil
// error means the request never produced a response.
func (c *Client) Send(ctx context.Context, record map[string]any, sendEmail bool) (Response, error) {
	payload := make(map[string]any, len(record)+1)
	for k, v := range record {
		payload[k] = v
	}
	payload["sendEmail"] = sendEmail

	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("encoding record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("building submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("Posting %d bytes to %s", len(body), c.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("Reading response body failed: %v", err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
		Body:       strings.TrimSpace(string(raw)),
	}, nil
}

// statusText strips the numeric prefix from resp.Status ("500 Internal
// Server Error" -> "Internal Server Error").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
