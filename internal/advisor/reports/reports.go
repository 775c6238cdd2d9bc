package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/analytics"
)

// Canned responses, matched by keyword in mock mode.
var mockResponses = advisor.MockTable{
	{Keyword: "workbook", Text: "Your workbook export is being prepared. This typically takes a few moments."},
	{Keyword: "analytics", Text: "Analytics workbook export service is ready. Request a report and I'll generate it for you."},
	{Keyword: "export", Text: "Workbook export completed successfully. Download is ready."},
}

// Handle starts a workbook export job. The result carries a pending export
// marker rather than bytes; download happens through artifact finalization.
func (r *Reports) Handle(ctx context.Context, query string) model.AdvisorResult {
	if r.opts.Mock || r.client == nil {
		r.l.Infof(ctx, "internal.advisor.reports: using mock response")
		return model.AdvisorResult{
			Advisor: r.Name(),
			Intent:  r.Intent(),
			Source:  model.SourceMock,
			Text:    advisor.MockAnswer(mockResponses, query, "analytics"),
		}
	}

	format, kind := exportFormat(query)
	req := analytics.ExportRequest{
		WorkbookID: r.cfg.WorkbookID,
		Name:       r.cfg.ReportName,
		CanvasIDs:  []string{r.cfg.CanvasID},
		Format:     format,
	}

	var exportID string
	err := advisor.Retry(ctx, r.opts.RetryCount, r.opts.RetryDelay, func() error {
		var initErr error
		exportID, initErr = r.client.InitiateExport(ctx, req)
		return initErr
	}, analytics.ErrAuthFailed)
	if err != nil {
		r.l.Errorf(ctx, "internal.advisor.reports: export initiation failed: %v", err)
		return model.AdvisorResult{
			Advisor: r.Name(),
			Intent:  r.Intent(),
			Source:  model.SourceError,
			Text:    errorText(err),
		}
	}

	r.l.Infof(ctx, "internal.advisor.reports: export initiated with id %s", exportID)
	return model.AdvisorResult{
		Advisor: r.Name(),
		Intent:  r.Intent(),
		Source:  model.SourceAPI,
		Text:    fmt.Sprintf("Workbook export initiated (format: %s). The report will be available for download shortly.", format),
		Pending: &model.PendingExport{
			Kind: kind,
			Job: model.ExportJob{
				ExportID:   exportID,
				WorkbookID: r.cfg.WorkbookID,
				Format:     format,
			},
		},
	}
}

// exportFormat picks the export format from query keywords, defaulting to pdf.
func exportFormat(query string) (string, model.ArtifactKind) {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "png") || strings.Contains(q, "image") || strings.Contains(q, "screenshot"):
		return "png", model.KindImage
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
	case errors.Is(err, analytics.ErrAuthFailed):
		return "Reports API authentication failed. Please verify the configured username and password."
	case errors.Is(err, analytics.ErrNoExportID):
		return "Reports API did not return an export ID."
	default:
		return fmt.Sprintf("Reports export API error: %v", err)
	}
}
