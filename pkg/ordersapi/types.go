package ordersapi

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the sales order REST client.
type Config struct {
	URL        string // collection endpoint, e.g. https://host/fscmRestApi/resources/11.13.18.05/salesOrdersForOrderHub
	Username   string
	Password   string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("ordersapi: url is required")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("ordersapi: username and password are required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Order is one sales order header, with optional line detail.
type Order struct {
	OrderKey       string      `json:"OrderKey"`
	StatusCode     string      `json:"StatusCode"`
	SubmittedBy    string      `json:"SubmittedBy"`
	SubmittedDate  string      `json:"SubmittedDate"`
	CreatedBy      string      `json:"CreatedBy"`
	LastUpdateDate string      `json:"LastUpdateDate"`
	Lines          []OrderLine `json:"lines"`
}

// OrderLine is one order line item.
type OrderLine struct {
	LineNumber      int     `json:"LineNumber"`
	ItemNumber      string  `json:"ItemNumber"`
	OrderedQuantity float64 `json:"OrderedQuantity"`
}

type listResponse struct {
	Items []Order `json:"items"`
}

const (
	DefaultTimeout = 30 * time.Second
	DefaultLimit   = 10
)

var (
	ErrOrderNotFound = errors.New("ordersapi: order not found")
	ErrAuthFailed    = errors.New("ordersapi: authentication failed")
)
