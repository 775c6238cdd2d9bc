package reports

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/analytics"
	"enterprise-advisors/pkg/log"
)

// Config identifies the workbook the adapter exports.
type Config struct {
	WorkbookID string
	CanvasID   string
	ReportName string
}

// Reports initiates asynchronous workbook exports. The adapter only starts
// the job; the artifact manager finishes it on later finalize calls.
type Reports struct {
	client *analytics.Client
	cfg    Config
	opts   advisor.Options
	l      log.Logger
}

var _ advisor.Advisor = (*Reports)(nil)

// New creates the reports adapter. client may be nil, which degrades the
// adapter to canned responses.
func New(client *analytics.Client, cfg Config, opts advisor.Options, l log.Logger) *Reports {
	if cfg.ReportName == "" {
		cfg.ReportName = "Workbook Report"
	}
	return &Reports{
		client: client,
		cfg:    cfg,
		opts:   opts.Normalize(),
		l:      l,
	}
}

func (r *Reports) Name() string { return "Reports Advisor" }

func (r *Reports) Intent() model.Intent { return model.IntentReports }
