package router

import (
	"context"

	"enterprise-advisors/pkg/genai"
	"enterprise-advisors/pkg/log"
)

// Router decides which advisors handle a query.
type Router interface {
	Route(ctx context.Context, query string) Decision
}

// IntentRouter combines a remote classifier with keyword matching.
type IntentRouter struct {
	llm  genai.IGenAI
	mode Mode
	l    log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter. llm may be nil, in which case every
// decision comes from the keyword classifier.
func New(llm genai.IGenAI, mode Mode, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm:  llm,
		mode: mode,
		l:    l,
	}
}
