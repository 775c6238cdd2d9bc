package orders

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/ordersapi"
)

// Canned responses, matched by keyword in mock mode.
var mockResponses = advisor.MockTable{
	{Keyword: "status", Text: "Current order fulfillment rate is at 95% with average delivery time of 2.3 days."},
	{Keyword: "inventory", Text: "Warehouse inventory levels are optimal with 98% stock availability."},
	{Keyword: "returns", Text: "Return rate is below industry average at 2.3% with high customer satisfaction."},
}

// Order key patterns: SYSTEM:TRANSACTIONID first, a bare long numeric
// header id second.
var (
	orderKeyRE = regexp.MustCompile(`\b[A-Z]{2,10}:\d{9,}\b`)
	headerIDRE = regexp.MustCompile(`\b\d{9,15}\b`)
)

const maxDetailLines = 5

// Handle answers the query from the sales-order service. A query carrying an
// order key fetches that order's detail; anything else lists recent orders.
func (o *Orders) Handle(ctx context.Context, query string) model.AdvisorResult {
	if o.opts.Mock || o.client == nil {
		o.l.Infof(ctx, "internal.advisor.orders: using mock response")
		return model.AdvisorResult{
			Advisor: o.Name(),
			Intent:  o.Intent(),
			Source:  model.SourceMock,
			Text:    advisor.MockAnswer(mockResponses, query, "status"),
		}
	}

	if key := extractOrderKey(query); key != "" {
		return o.detail(ctx, key)
	}
	return o.list(ctx)
}

func (o *Orders) detail(ctx context.Context, key string) model.AdvisorResult {
	var order *ordersapi.Order
	err := advisor.Retry(ctx, o.opts.RetryCount, o.opts.RetryDelay, func() error {
		var getErr error
		order, getErr = o.client.GetOrder(ctx, key)
		return getErr
	}, ordersapi.ErrOrderNotFound, ordersapi.ErrAuthFailed)
	if err != nil {
		o.l.Errorf(ctx, "internal.advisor.orders: detail call failed for %s: %v", key, err)
		return o.errorResult(detailErrorText(err, key))
	}

	lines := make([]string, 0, maxDetailLines)
	for i, ln := range order.Lines {
		if i == maxDetailLines {
			break
		}
		lines = append(lines, fmt.Sprintf("Line %d: %s x%g", ln.LineNumber, ln.ItemNumber, ln.OrderedQuantity))
	}
	linesText := "(No line details returned)"
	if len(lines) > 0 {
		linesText = strings.Join(lines, "\n")
	}

	text := fmt.Sprintf("Order %s\nStatus: %s\nSubmitted By: %s on %s\n\nTop Lines:\n%s",
		order.OrderKey, order.StatusCode, order.SubmittedBy, order.SubmittedDate, linesText)

	return model.AdvisorResult{
		Advisor: o.Name(),
		Intent:  o.Intent(),
		Source:  model.SourceAPI,
		Text:    text,
	}
}

func (o *Orders) list(ctx context.Context) model.AdvisorResult {
	var items []ordersapi.Order
	err := advisor.Retry(ctx, o.opts.RetryCount, o.opts.RetryDelay, func() error {
		var listErr error
		items, listErr = o.client.ListOrders(ctx, o.cfg.ListLimit)
		return listErr
	}, ordersapi.ErrAuthFailed)
	if err != nil {
		o.l.Errorf(ctx, "internal.advisor.orders: list call failed: %v", err)
		return o.errorResult(listErrorText(err))
	}

	if len(items) == 0 {
		return model.AdvisorResult{
			Advisor: o.Name(),
			Intent:  o.Intent(),
			Source:  model.SourceAPI,
			Text:    "No recent sales orders were returned by the API.",
		}
	}

	sortByLastUpdate(items)

	total := len(items)
	display := items
	if total > advisor.MaxDisplayRecords {
		display = items[:advisor.MaxDisplayRecords]
	}

	lines := make([]string, 0, len(display))
	for _, it := range display {
		lines = append(lines, fmt.Sprintf("- %s | Status: %s | By: %s | Updated: %s",
			it.OrderKey, it.StatusCode, it.CreatedBy, it.LastUpdateDate))
	}

	text := fmt.Sprintf("Recent Sales Orders (showing %d of %d):\n%s", len(display), total, strings.Join(lines, "\n"))
	if total > advisor.MaxDisplayRecords {
		text += fmt.Sprintf("\n\nShowing first %d of %d orders. Use a specific Order ID for details.", advisor.MaxDisplayRecords, total)
	}

	return model.AdvisorResult{
		Advisor: o.Name(),
		Intent:  o.Intent(),
		Source:  model.SourceAPI,
		Text:    text,
	}
}

func (o *Orders) errorResult(text string) model.AdvisorResult {
	return model.AdvisorResult{
		Advisor: o.Name(),
		Intent:  o.Intent(),
		Source:  model.SourceError,
		Text:    text,
	}
}

// extractOrderKey scans the query for an order key, preferring the
// SYSTEM:TRANSACTIONID form over a bare header id.
func extractOrderKey(query string) string {
	if m := orderKeyRE.FindString(query); m != "" {
		return m
	}
	return headerIDRE.FindString(query)
}

// sortByLastUpdate orders items latest first. Entries whose timestamp does
// not parse sort as oldest.
func sortByLastUpdate(items []ordersapi.Order) {
	sort.SliceStable(items, func(i, j int) bool {
		return parseUpdateTime(items[i].LastUpdateDate).After(parseUpdateTime(items[j].LastUpdateDate))
	})
}

func parseUpdateTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.000-07:00", s); err == nil {
		return t
	}
	return time.Time{}
}

func detailErrorText(err error, key string) string {
	switch {
	case errors.Is(err, ordersapi.ErrOrderNotFound):
		return fmt.Sprintf("No sales order found for key/id '%s'.", key)
	case errors.Is(err, ordersapi.ErrAuthFailed):
		return "Orders API authentication failed. Please verify the configured username and password."
	default:
		return fmt.Sprintf("Orders API error: %v", err)
	}
}

func listErrorText(err error) string {
	if errors.Is(err, ordersapi.ErrAuthFailed) {
		return "Orders API authentication failed. Please verify the configured username and password."
	}
	return fmt.Sprintf("Orders API error: %v", err)
}
