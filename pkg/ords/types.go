package ords

import (
	"errors"
	"net/http"
	"time"
)

// Config configures a client for one REST data-service endpoint. URL is the
// full endpoint URL, not a base path.
type Config struct {
	URL      string
	Username string
	Password string

	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("ords: url is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Record is one row of a tabular endpoint response.
type Record map[string]any

// Result is a decoded endpoint response. Exactly one of Records or Text is
// populated: Records for array payloads, Text for object payloads.
type Result struct {
	Records []Record
	Text    string
}

type translateRequest struct {
	UserQuery string `json:"user_query"`
}

const DefaultTimeout = 30 * time.Second

// Object responses carry the answer under one of these keys, checked in order.
var answerKeys = []string{"query_result", "response", "reply", "answer"}

var ErrAuthFailed = errors.New("ords: authentication failed")
