package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"tripdesk/pkg/utils"
)

// amadeusClient is the shared HTTP plumbing for all travel adapters. Each
// call attaches the cached bearer token and forwards the provider body
// verbatim; non-2xx answers become UpstreamError with the provider status.
type amadeusClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

func newAmadeusClient(baseURL string, tokens TokenSource, client *http.Client) *amadeusClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &amadeusClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    client,
	}
}

func (c *amadeusClient) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *amadeusClient) post(ctx context.Context, path string, query url.Values, payload interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, query, payload)
}

func (c *amadeusClient) do(ctx context.Context, method, path string, query url.Values, payload interface{}) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &utils.UpstreamError{
			Service: "amadeus",
			Status:  resp.StatusCode,
			Detail:  extractAmadeusDetail(raw, resp.Status),
			Body:    string(raw),
		}
	}

	return raw, nil
}

// extractAmadeusDetail pulls the most specific human-readable message out
// of a provider error body, falling back to the HTTP status line.
func extractAmadeusDetail(body []byte, statusLine string) string {
	s := string(body)
	for _, path := range []string{"errors.0.detail", "errors.0.title", "error_description", "error"} {
		if v := gjson.Get(s, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return statusLine
}
