package general

import (
	"context"
	"strings"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/genai"
	"enterprise-advisors/pkg/ords"
)

// Canned responses, matched by keyword when no backend can answer.
var mockResponses = advisor.MockTable{
	{Keyword: "help", Text: "I am a General Agent that can assist you with Finance, HR, or Orders queries. I can route your questions to specialized advisors or provide general information."},
	{Keyword: "capabilities", Text: "I can help you with:\n- Financial queries (revenue, budgets, expenses)\n- HR policies (benefits, leave, work policies)\n- Order management (status, inventory, returns)\n- General information and routing"},
	{Keyword: "services", Text: "Our advisory system provides specialized assistance through dedicated agents for Finance, HR, and Orders. Ask me anything and I'll connect you with the right expert."},
}

// databaseKeywords mark a query as data-oriented, worth trying the
// natural-language-to-SQL endpoint before the generative model.
var databaseKeywords = []string{
	"list", "show", "get", "find", "search", "query", "select", "count", "sum", "average",
	"table", "database", "record", "data", "customer", "employee", "product", "item",
	"all", "total", "how many", "sql", "translate",
}

// Generative fallback sampling parameters.
const (
	chatTemperature = 0.7
	chatMaxTokens   = 500
)

// Handle tries the data endpoint for data-oriented queries, then the
// generative model, then the canned capability answers.
func (g *General) Handle(ctx context.Context, query string) model.AdvisorResult {
	if g.opts.Mock {
		g.l.Infof(ctx, "internal.advisor.general: using mock response")
		return g.mockResult(query)
	}

	if isDatabaseQuery(query) && g.nl2sql != nil {
		g.l.Infof(ctx, "internal.advisor.general: data query detected, trying NL2SQL endpoint")
		var res *ords.Result
		err := advisor.Retry(ctx, g.opts.RetryCount, g.opts.RetryDelay, func() error {
			var tErr error
			res, tErr = g.nl2sql.Translate(ctx, query)
			return tErr
		}, ords.ErrAuthFailed)
		if err == nil && res != nil {
			if text := translateText(res); text != "" {
				return model.AdvisorResult{
					Advisor: g.Name(),
					Intent:  g.Intent(),
					Source:  model.SourceAPI,
					Text:    text,
				}
			}
		}
		g.l.Warnf(ctx, "internal.advisor.general: NL2SQL endpoint failed, trying generative fallback: %v", err)
	}

	if g.llm != nil {
		resp, err := g.llm.Chat(ctx, &genai.Request{
			Message:     query,
			Temperature: chatTemperature,
			MaxTokens:   chatMaxTokens,
		})
		if err != nil {
			g.l.Errorf(ctx, "internal.advisor.general: generation call failed: %v", err)
			return model.AdvisorResult{
				Advisor: g.Name(),
				Intent:  g.Intent(),
				Source:  model.SourceError,
				Text:    "I encountered an error while processing your question. Please try again.",
			}
		}
		if text := strings.TrimSpace(resp.Text); text != "" {
			return model.AdvisorResult{
				Advisor: g.Name(),
				Intent:  g.Intent(),
				Source:  model.SourceAPI,
				Text:    text,
			}
		}
		return model.AdvisorResult{
			Advisor: g.Name(),
			Intent:  g.Intent(),
			Source:  model.SourceError,
			Text:    "I apologize, but I couldn't generate a response at this time. Please try again.",
		}
	}

	return g.mockResult(query)
}

func (g *General) mockResult(query string) model.AdvisorResult {
	return model.AdvisorResult{
		Advisor: g.Name(),
		Intent:  g.Intent(),
		Source:  model.SourceMock,
		Text:    advisor.MockAnswer(mockResponses, query, "help"),
	}
}

// translateText renders a decoded NL2SQL response: record lists get the
// shared truncated formatting, answer objects pass through as text.
func translateText(res *ords.Result) string {
	if len(res.Records) > 0 {
		return advisor.FormatRecords(res.Records)
	}
	return strings.TrimSpace(res.Text)
}

func isDatabaseQuery(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range databaseKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
