package ords

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to a REST data-service endpoint that answers natural-language
// prompts, either with an array of records or with a single answer object.
type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
}

// New creates an endpoint client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		url:        cfg.URL,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Query sends the prompt as a GET query parameter and decodes the response,
// which is either a JSON array of records or a JSON object carrying the
// answer under a well-known key.
func (c *Client) Query(ctx context.Context, prompt string) (*Result, error) {
	endpoint := c.url
	if strings.Contains(endpoint, "?") {
		endpoint += "&prompt=" + url.QueryEscape(prompt)
	} else {
		endpoint += "?prompt=" + url.QueryEscape(prompt)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ords: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeResult(body)
}

// Translate sends the query to a natural-language-to-SQL endpoint. The
// response decodes the same way as Query: record arrays become Records,
// answer objects and plain text become Text.
func (c *Client) Translate(ctx context.Context, query string) (*Result, error) {
	payload, err := json.Marshal(translateRequest{UserQuery: query})
	if err != nil {
		return nil, fmt.Errorf("ords: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("ords: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeResult(body)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ords: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuthFailed
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("ords: API error %d: %s", resp.StatusCode, string(raw))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ords: failed to read response body: %w", err)
	}
	return body, nil
}

func decodeResult(body []byte) (*Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("ords: failed to decode record array: %w", err)
		}
		return &Result{Records: records}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		// Some endpoints answer with a bare string or plain text.
		return &Result{Text: strings.TrimSpace(string(trimmed))}, nil
	}

	for _, key := range answerKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil && text != "" {
			return &Result{Text: text}, nil
		}
	}
	return &Result{Text: string(trimmed)}, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
}
