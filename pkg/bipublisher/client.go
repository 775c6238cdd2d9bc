package bipublisher

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// reportBytesRE extracts the base64 payload from the namespaced response
// element. The namespace prefix varies between server versions, so the
// response is pattern-matched rather than fully parsed.
var reportBytesRE = regexp.MustCompile(`<[^:]+:reportBytes>([^<]+)</[^:]+:reportBytes>`)

const soapEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope" xmlns:pub="http://xmlns.oracle.com/oxp/service/PublicReportService">
   <soap:Header/>
   <soap:Body>
      <pub:runReport>
         <pub:reportRequest>
            <pub:attributeFormat>%s</pub:attributeFormat>
            <pub:parameterNameValues>
               <pub:item>
                  <pub:name>%s</pub:name>
                  <pub:values>
                     <pub:item>%s</pub:item>
                  </pub:values>
               </pub:item>
            </pub:parameterNameValues>
            <pub:reportAbsolutePath>%s</pub:reportAbsolutePath>
            <pub:sizeOfDataChunkDownload>-1</pub:sizeOfDataChunkDownload>
         </pub:reportRequest>
         <pub:appParams></pub:appParams>
      </pub:runReport>
   </soap:Body>
</soap:Envelope>`

// Client calls the SOAP report-rendering service.
type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a report service client.
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

// RunReport renders the report and returns the decoded binary payload.
func (c *Client) RunReport(ctx context.Context, req ReportRequest) ([]byte, error) {
	body := fmt.Sprintf(soapEnvelope,
		xmlEscape(req.Format),
		xmlEscape(req.ParamName),
		xmlEscape(req.ParamValue),
		xmlEscape(req.ReportPath),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("bipublisher: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/soap+xml; charset=UTF-8")
	httpReq.Header.Set("SOAPAction", "")
	httpReq.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("bipublisher: API call failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuthFailed
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bipublisher: API error %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bipublisher: failed to read response: %w", err)
	}

	m := reportBytesRE.FindSubmatch(raw)
	if m == nil {
		return nil, ErrReportBytesMissing
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(m[1])))
	if err != nil {
		return nil, fmt.Errorf("bipublisher: failed to decode report payload: %w", err)
	}
	return decoded, nil
}

func xmlEscape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
