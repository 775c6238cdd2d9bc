package orders

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/log"
	"enterprise-advisors/pkg/ordersapi"
)

// Config tunes the list path.
type Config struct {
	// ListLimit is the page size for recent-order lists.
	ListLimit int
}

// Orders answers sales-order queries: detail when the query carries an
// order key, a recent-orders list otherwise.
type Orders struct {
	client *ordersapi.Client
	cfg    Config
	opts   advisor.Options
	l      log.Logger
}

var _ advisor.Advisor = (*Orders)(nil)

// New creates the orders adapter. client may be nil, which degrades the
// adapter to canned responses.
func New(client *ordersapi.Client, cfg Config, opts advisor.Options, l log.Logger) *Orders {
	if cfg.ListLimit < 1 {
		cfg.ListLimit = ordersapi.DefaultLimit
	}
	return &Orders{
		client: client,
		cfg:    cfg,
		opts:   opts.Normalize(),
		l:      l,
	}
}

func (o *Orders) Name() string { return "Orders Advisor" }

func (o *Orders) Intent() model.Intent { return model.IntentOrders }
