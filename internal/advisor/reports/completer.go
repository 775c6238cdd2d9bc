package reports

import (
	"context"

	"enterprise-advisors/internal/artifact"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/analytics"
)

// exportCompleter downloads a finished workbook export for the artifact
// manager's finalize step.
type exportCompleter struct {
	client *analytics.Client
}

var _ artifact.Completer = exportCompleter{}

// NewCompleter adapts the analytics client to the artifact completer.
func NewCompleter(client *analytics.Client) artifact.Completer {
	return exportCompleter{client: client}
}

func (c exportCompleter) Fetch(ctx context.Context, job model.ExportJob) ([]byte, string, error) {
	return c.client.DownloadExport(ctx, job.WorkbookID, job.ExportID)
}
