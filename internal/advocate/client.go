package advocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client fetches the advocate list from a running directory server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a client for the server at baseURL, e.g. http://localhost:8080.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// listResponse is the envelope returned by GET /api/advocates.
type listResponse struct {
	Data []Advocate `json:"data"`
}

// List calls GET /api/advocates. A missing data field decodes to an empty list.
func (c *Client) List(ctx context.Context) ([]Advocate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/advocates", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch advocates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch advocates: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode advocates: %w", err)
	}
	if payload.Data == nil {
		return []Advocate{}, nil
	}
	return payload.Data, nil
}
