package spdx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// catalog models the subset of licenses.json this tool reads.
type catalog struct {
	LicenseListVersion string    `json:"licenseListVersion"`
	Licenses           []License `json:"licenses"`
}

// Client downloads the SPDX license catalog.
type Client struct {
	catalogURL string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client. Zero
// leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// New creates a catalog client for catalogURL.
func New(catalogURL string, opts ...Option) (*Client, error) {
	catalogURL = strings.TrimSpace(catalogURL)
	if catalogURL == "" {
		return nil, errors.New("spdx catalog url required")
	}
	if _, err := url.Parse(catalogURL); err != nil {
		return nil, fmt.Errorf("parse spdx catalog url: %w", err)
	}
	client := &Client{
		catalogURL: catalogURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchRegistry downloads and decodes the catalog. Any failure is returned;
// callers treat it as fatal.
func (c *Client) FetchRegistry(ctx context.Context) (*Registry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("fetch spdx catalog (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch spdx catalog: returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload catalog
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode spdx catalog: %w", err)
	}
	if payload.Licenses == nil {
		return nil, errors.New("decode spdx catalog: missing licenses array")
	}
	return NewRegistry(payload.Licenses), nil
}
