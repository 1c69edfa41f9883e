// Package geoip guesses the caller's country from their public IP.
// The result only preselects a default locale; every failure path is
// expected to fall back to the registry default.
package geoip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://ipapi.co"

// Client queries a country-lookup endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a geolocation client. Request deadlines are the
// caller's concern via context.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    http.DefaultClient,
	}
}

// CountryCode returns the two-letter country code for the caller's
// public IP.
func (c *Client) CountryCode(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/country/", nil)
	if err != nil {
		return "", fmt.Errorf("detect country: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("detect country: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("detect country: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16))
	if err != nil {
		return "", fmt.Errorf("detect country: read response: %w", err)
	}

	code := strings.ToUpper(strings.TrimSpace(string(body)))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "", fmt.Errorf("detect country: malformed code %q", code)
	}

	return code, nil
}
