package ordersapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client calls the paginated sales-order REST service.
type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a sales order client.
func NewClient(cfg Config) (*Client, error) {
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

// GetOrder fetches a single order by its key or header id.
func (c *Client) GetOrder(ctx context.Context, key string) (*Order, error) {
	endpoint := c.url + "/" + url.PathEscape(key)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrOrderNotFound
	case http.StatusUnauthorized:
		return nil, ErrAuthFailed
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("ordersapi: API error %d: %s", resp.StatusCode, string(raw))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("ordersapi: failed to decode order detail: %w", err)
	}
	if order.OrderKey == "" {
		order.OrderKey = key
	}
	return &order, nil
}

// ListOrders fetches up to limit recent orders. A non-positive limit uses DefaultLimit.
func (c *Client) ListOrders(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	endpoint := c.url + "?limit=" + strconv.Itoa(limit)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrAuthFailed
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("ordersapi: API error %d: %s", resp.StatusCode, string(raw))
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("ordersapi: failed to decode order list: %w", err)
	}
	return list.Items, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ordersapi: failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ordersapi: API call failed: %w", err)
	}
	return resp, nil
}
