package finance

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/bipublisher"
	"enterprise-advisors/pkg/log"
)

// Config holds the report definition the adapter renders.
type Config struct {
	ReportPath      string // catalog path of the purchase-order report
	DefaultPONumber string // used when no PO number appears in the query
}

// Finance renders purchase-order reports through the SOAP report service.
type Finance struct {
	client *bipublisher.Client
	cfg    Config
	opts   advisor.Options
	l      log.Logger
}

var _ advisor.Advisor = (*Finance)(nil)

// New creates the finance adapter. client may be nil, which degrades the
// adapter to canned responses.
func New(client *bipublisher.Client, cfg Config, opts advisor.Options, l log.Logger) *Finance {
	return &Finance{
		client: client,
		cfg:    cfg,
		opts:   opts.Normalize(),
		l:      l,
	}
}

func (f *Finance) Name() string { return "Finance Advisor" }

func (f *Finance) Intent() model.Intent { return model.IntentFinance }
