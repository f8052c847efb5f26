// Package coingecko wraps the CoinGecko v3 public API: spot quotes, free-text
// search, and the trending list.
//
// The client makes one bounded, synchronous request per call, with no retry
// and no backoff. CoinGecko enforces informal per-IP rate limits, so callers
// that fetch many assets in sequence are expected to pace themselves.
package coingecko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// BaseURL is the public CoinGecko API endpoint.
const BaseURL = "https://api.coingecko.com/api/v3"

// Timeout bounds every request.
const Timeout = 10 * time.Second

// Client talks to the CoinGecko API. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a client for the public API. The apiKey is the optional
// CoinGecko demo key and may be empty: the public endpoints answer without
// one, at a lower rate limit.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: BaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// NewClientAt is NewClient against another base URL. Tests point it at a
// local server.
func NewClientAt(baseURL, apiKey string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// jwget performs an HTTP GET request on an API path and unmarshals the JSON
// response body into the provided data structure.
func (c *Client) jwget(ctx context.Context, path string, params url.Values, data interface{}) error {
	if c.apiKey != "" {
		params.Set("x_cg_demo_api_key", c.apiKey)
	}
	addr := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
