package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Client calls the asynchronous workbook export service.
//
// Export is a two-step protocol: InitiateExport starts a server-side job and
// returns its id; DownloadExport fetches the produced binary once the job is
// done, returning ErrExportNotReady until then.
type Client struct {
	baseURL    string
	username   string
	password   string
	basicAuth  bool
	httpClient *http.Client
}

// NewClient creates a workbook export client.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		basicAuth:  !cfg.useOAuth(),
		httpClient: cfg.HTTPClient,
	}

	if cfg.useOAuth() {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		// Token refresh rides on the configured transport.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, cfg.HTTPClient)
		c.httpClient = cc.Client(ctx)
	}

	return c, nil
}

// InitiateExport starts an export job and returns its id, parsed from the
// resourceUri when present or from an explicit exportId field.
func (c *Client) InitiateExport(ctx context.Context, req ExportRequest) (string, error) {
	if req.ScreenWidth == 0 {
		req.ScreenWidth = DefaultScreenWidth
	}
	if req.ScreenHeight == 0 {
		req.ScreenHeight = DefaultScreenHeight
	}

	payload := exportPayload{
		Name:         req.Name,
		Type:         "file",
		CanvasIDs:    req.CanvasIDs,
		Format:       req.Format,
		ScreenWidth:  req.ScreenWidth,
		ScreenHeight: req.ScreenHeight,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("analytics: failed to marshal export payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/%s/catalog/workbooks/%s/exports", c.baseURL, apiVersion, req.WorkbookID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("analytics: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("analytics: export initiation failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	case http.StatusUnauthorized:
		return "", ErrAuthFailed
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return "", fmt.Errorf("analytics: export API error %d: %s", resp.StatusCode, string(raw))
	}

	var out exportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("analytics: failed to decode export response: %w", err)
	}

	if out.ResourceURI != "" {
		if idx := strings.LastIndex(out.ResourceURI, "/exports/"); idx >= 0 {
			return out.ResourceURI[idx+len("/exports/"):], nil
		}
	}
	if out.ExportID != "" {
		return out.ExportID, nil
	}
	return "", ErrNoExportID
}

// DownloadExport fetches the finished export binary. Anything other than a
// 200 means the job is not done yet (or failed server-side) and maps to
// ErrExportNotReady so callers can retry.
func (c *Client) DownloadExport(ctx context.Context, workbookID, exportID string) ([]byte, string, error) {
	endpoint := fmt.Sprintf("%s/api/%s/catalog/workbooks/%s/exports/%s", c.baseURL, apiVersion, workbookID, exportID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("analytics: failed to create request: %w", err)
	}
	c.authorize(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("analytics: download failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, "", ErrAuthFailed
	default:
		return nil, "", fmt.Errorf("%w: HTTP %d", ErrExportNotReady, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("analytics: failed to read export body: %w", err)
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func (c *Client) authorize(req *http.Request) {
	if c.basicAuth {
		req.SetBasicAuth(c.username, c.password)
	}
}
