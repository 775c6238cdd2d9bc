package advisor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"enterprise-advisors/pkg/ords"
)

// MaxDisplayRecords caps list-shaped output across all adapters.
const MaxDisplayRecords = 10

// Retry runs fn up to attempts times, sleeping delay between tries.
// Errors matching one of the terminal sentinels are returned immediately;
// retrying a 404 or a bad credential cannot succeed. The last error is
// returned when every attempt fails.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error, terminal ...error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 && delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err = fn(); err == nil {
			return nil
		}
		for _, t := range terminal {
			if errors.Is(err, t) {
				return err
			}
		}
	}
	return err
}

// MockEntry is one keyword-matched canned response.
type MockEntry struct {
	Keyword string
	Text    string
}

// MockTable is an ordered set of canned responses. Order matters: the first
// keyword appearing in the query wins, so multi-keyword queries answer
// deterministically.
type MockTable []MockEntry

// MockAnswer picks the canned response whose keyword appears in the query,
// falling back to the entry under defaultKey.
func MockAnswer(table MockTable, query, defaultKey string) string {
	q := strings.ToLower(query)
	for _, e := range table {
		if strings.Contains(q, e.Keyword) {
			return e.Text
		}
	}
	for _, e := range table {
		if e.Keyword == defaultKey {
			return e.Text
		}
	}
	return ""
}

// FormatRecords renders tabular records as numbered key: value lines,
// truncated to the first MaxDisplayRecords with a count suffix. Keys are
// sorted so output is stable.
func FormatRecords(records []ords.Record) string {
	total := len(records)
	display := records
	if total > MaxDisplayRecords {
		display = records[:MaxDisplayRecords]
	}

	lines := make([]string, 0, len(display))
	for i, rec := range display {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %v", k, rec[k]))
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.Join(pairs, ", ")))
	}

	text := strings.Join(lines, "\n")
	if total > MaxDisplayRecords {
		text += fmt.Sprintf("\n\nShowing first %d of %d records. Be more specific to narrow results.", MaxDisplayRecords, total)
	}
	return text
}
