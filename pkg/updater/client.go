// Package updater checks the remote sensor database for a newer version and
// downloads it. Both operations are blocking, user-initiated and never
// retried automatically.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default endpoints of the upstream sensor database.
const (
	DefaultSensorsURL = "https://raw.githubusercontent.com/EmberLightVFX/Camera-Sensor-Database/refs/heads/main/data/sensors.json"
	DefaultVersionURL = "https://api.github.com/repos/EmberLightVFX/Camera-Sensor-Database/contents/data/sensors.json"
)

// Client talks to the remote dataset and version endpoints.
type Client struct {
	sensorsURL string
	versionURL string
	httpClient *http.Client
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new remote dataset client.
func NewClient(sensorsURL, versionURL string, opts ...ClientOption) *Client {
	c := &Client{
		sensorsURL: sensorsURL,
		versionURL: versionURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets a custom timeout for the HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// versionDocument is the remote metadata document. Only the content hash is
// consumed; everything else is ignored.
type versionDocument struct {
	SHA string `json:"sha"`
}

// FetchVersion returns the content hash the remote advertises for the
// current dataset.
func (c *Client) FetchVersion(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "version check", c.versionURL)
	if err != nil {
		return "", err
	}

	var doc versionDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	if doc.SHA == "" {
		return "", fmt.Errorf("%w: no sha field", ErrMalformedMetadata)
	}

	return doc.SHA, nil
}

// FetchDataset returns the raw remote dataset bytes, unmodified.
func (c *Client) FetchDataset(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "download", c.sensorsURL)
}

func (c *Client) get(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("unexpected status HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	return body, nil
}
