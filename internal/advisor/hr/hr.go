package hr

import (
	"context"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/ords"
)

// Canned responses, matched by keyword when the endpoint is unavailable.
var mockResponses = advisor.MockTable{
	{Keyword: "policy", Text: "Our work-from-home policy allows 3 days remote work per week with core hours from 10 AM to 4 PM."},
	{Keyword: "benefits", Text: "Employee benefits include comprehensive health insurance, 401k matching up to 6%, and annual learning allowance."},
	{Keyword: "leave", Text: "Annual leave policy includes 20 days PTO, 10 sick days, and additional floating holidays."},
}

// Handle sends the query to the HR data endpoint. Record lists are rendered
// as numbered key: value lines; failures of any kind fall back to the canned
// policy answers so HR questions always get some response.
func (h *HR) Handle(ctx context.Context, query string) model.AdvisorResult {
	if !h.opts.Mock && h.client != nil {
		var res *ords.Result
		err := advisor.Retry(ctx, h.opts.RetryCount, h.opts.RetryDelay, func() error {
			var qErr error
			res, qErr = h.client.Query(ctx, query)
			return qErr
		}, ords.ErrAuthFailed)
		if err == nil {
			return h.apiResult(res)
		}
		h.l.Warnf(ctx, "internal.advisor.hr: endpoint call failed, falling back to canned answer: %v", err)
	} else {
		h.l.Infof(ctx, "internal.advisor.hr: using mock response")
	}

	return model.AdvisorResult{
		Advisor: h.Name(),
		Intent:  h.Intent(),
		Source:  model.SourceMock,
		Text:    advisor.MockAnswer(mockResponses, query, "policy"),
	}
}

func (h *HR) apiResult(res *ords.Result) model.AdvisorResult {
	text := res.Text
	if len(res.Records) > 0 {
		text = advisor.FormatRecords(res.Records)
	}
	return model.AdvisorResult{
		Advisor: h.Name(),
		Intent:  h.Intent(),
		Source:  model.SourceAPI,
		Text:    text,
	}
}
