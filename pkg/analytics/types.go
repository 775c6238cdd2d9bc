package analytics

import (
	"errors"
	"net/http"
	"time"
)

// Config configures the workbook export client.
//
// Two authentication modes are supported: OAuth2 client credentials when
// ClientID/ClientSecret/TokenURL are all set, otherwise HTTP basic auth.
type Config struct {
	URL      string // service base URL, e.g. https://host
	Username string
	Password string

	ClientID     string
	ClientSecret string
	TokenURL     string

	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("analytics: url is required")
	}
	if !c.useOAuth() && (c.Username == "" || c.Password == "") {
		return errors.New("analytics: credentials are required (basic or oauth2)")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

func (c *Config) useOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}

// ExportRequest describes one workbook export initiation.
type ExportRequest struct {
	WorkbookID   string
	Name         string
	CanvasIDs    []string
	Format       string // pdf | png | xlsx | csv
	ScreenWidth  int
	ScreenHeight int
}

type exportPayload struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	CanvasIDs    []string `json:"canvasIds"`
	Format       string   `json:"format"`
	ScreenWidth  int      `json:"screenwidth"`
	ScreenHeight int      `json:"screenheight"`
}

type exportResponse struct {
	ResourceURI string `json:"resourceUri"`
	ExportID    string `json:"exportId"`
}

const (
	DefaultTimeout      = 30 * time.Second
	DefaultScreenWidth  = 1440
	DefaultScreenHeight = 900

	apiVersion = "20210901"
)

var (
	ErrAuthFailed     = errors.New("analytics: authentication failed")
	ErrNoExportID     = errors.New("analytics: no export id in initiation response")
	ErrExportNotReady = errors.New("analytics: export not ready")
)
