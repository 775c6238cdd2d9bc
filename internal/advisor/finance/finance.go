package finance

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/bipublisher"
)

// Canned responses, matched by keyword in mock mode.
var mockResponses = advisor.MockTable{
	{Keyword: "revenue", Text: "Based on our financial analysis, the Q3 revenue shows a 15% increase YoY with strong performance in APAC region."},
	{Keyword: "expenses", Text: "Current expense trends indicate a 10% reduction in operational costs due to automation initiatives."},
	{Keyword: "budget", Text: "The annual budget allocation shows 40% for R&D, 30% for Operations, and 30% for Marketing."},
}

var poNumberRE = regexp.MustCompile(`\b\d{3,10}\b`)

// Handle renders the purchase-order report for the query. In mock mode, or
// when no report client is configured, it answers from the canned table.
func (f *Finance) Handle(ctx context.Context, query string) model.AdvisorResult {
	if f.opts.Mock || f.client == nil {
		f.l.Infof(ctx, "internal.advisor.finance: using mock response")
		return model.AdvisorResult{
			Advisor: f.Name(),
			Intent:  f.Intent(),
			Source:  model.SourceMock,
			Text:    advisor.MockAnswer(mockResponses, query, "budget"),
		}
	}

	format, kind := reportFormat(query)
	poNumber := f.cfg.DefaultPONumber
	if m := poNumberRE.FindString(query); m != "" {
		poNumber = m
	}

	req := bipublisher.ReportRequest{
		ReportPath: f.cfg.ReportPath,
		Format:     format,
		ParamName:  "P_PO_NUM",
		ParamValue: poNumber,
	}

	var raw []byte
	err := advisor.Retry(ctx, f.opts.RetryCount, f.opts.RetryDelay, func() error {
		var runErr error
		raw, runErr = f.client.RunReport(ctx, req)
		return runErr
	}, bipublisher.ErrAuthFailed, bipublisher.ErrReportBytesMissing)
	if err != nil {
		f.l.Errorf(ctx, "internal.advisor.finance: report call failed: %v", err)
		return model.AdvisorResult{
			Advisor: f.Name(),
			Intent:  f.Intent(),
			Source:  model.SourceError,
			Text:    errorText(err),
		}
	}

	f.l.Infof(ctx, "internal.advisor.finance: report generated, %d bytes", len(raw))
	return model.AdvisorResult{
		Advisor: f.Name(),
		Intent:  f.Intent(),
		Source:  model.SourceAPI,
		Text:    fmt.Sprintf("Purchase order report for PO %s generated.", poNumber),
		Payload: &model.BinaryPayload{Data: raw, Kind: kind},
	}
}

// reportFormat picks the export format from query keywords, defaulting to pdf.
func reportFormat(query string) (string, model.ArtifactKind) {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "xlsx") || strings.Contains(q, "excel") || strings.Contains(q, "spreadsheet"):
		return "xlsx", model.KindSpreadsheet
	case strings.Contains(q, "csv"):
		return "csv", model.KindCSV
	default:
		return "pdf", model.KindPDF
	}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, bipublisher.ErrAuthFailed):
		return "Finance report API authentication failed. Please verify the configured username and password."
	case errors.Is(err, bipublisher.ErrReportBytesMissing):
		return "Report generated but report data was not found in the response."
	default:
		return fmt.Sprintf("Finance report API error: %v", err)
	}
}
