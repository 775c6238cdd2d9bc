package advisor

import (
	"context"

	"enterprise-advisors/internal/model"
)

// Advisor is one specialized query handler. Handle never returns an error:
// every failure mode is folded into the result with source set to error.
type Advisor interface {
	Name() string
	Intent() model.Intent
	Handle(ctx context.Context, query string) model.AdvisorResult
}
