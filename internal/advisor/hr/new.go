package hr

import (
	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/log"
	"enterprise-advisors/pkg/ords"
)

// HR answers policy and employee questions through a prompt-driven data
// endpoint.
type HR struct {
	client *ords.Client
	opts   advisor.Options
	l      log.Logger
}

var _ advisor.Advisor = (*HR)(nil)

// New creates the HR adapter. client may be nil, which degrades the adapter
// to canned responses.
func New(client *ords.Client, opts advisor.Options, l log.Logger) *HR {
	return &HR{
		client: client,
		opts:   opts.Normalize(),
		l:      l,
	}
}

func (h *HR) Name() string { return "HR Advisor" }

func (h *HR) Intent() model.Intent { return model.IntentHR }
