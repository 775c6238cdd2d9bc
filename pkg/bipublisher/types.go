package bipublisher

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the report service client.
type Config struct {
	URL        string // full endpoint of the PublicReportService
	Username   string
	Password   string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("bipublisher: url is required")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("bipublisher: username and password are required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ReportRequest describes one runReport invocation.
type ReportRequest struct {
	ReportPath string // absolute catalog path of the report definition
	Format     string // pdf | xlsx | csv
	ParamName  string // single report parameter name, e.g. P_PO_NUM
	ParamValue string
}

const DefaultTimeout = 30 * time.Second

// Sentinel errors. ErrAuthFailed maps to HTTP 401 so callers can give a
// credential-specific remediation hint.
var (
	ErrAuthFailed         = errors.New("bipublisher: authentication failed")
	ErrReportBytesMissing = errors.New("bipublisher: no reportBytes element in response")
)
