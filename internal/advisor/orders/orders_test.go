package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/ordersapi"
)

func newTestAdapter(t *testing.T, url string) *Orders {
	t.Helper()
	client, err := ordersapi.NewClient(ordersapi.Config{URL: url, Username: "scm", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(client, Config{}, advisor.Options{}, &mockLogger{})
}

func TestHandleMockMode(t *testing.T) {
	o := New(nil, Config{}, advisor.Options{Mock: true}, &mockLogger{})

	res := o.Handle(context.Background(), "what is my order status")
	if res.Source != model.SourceMock {
		t.Errorf("expected mock source, got %s", res.Source)
	}
	if !strings.Contains(res.Text, "fulfillment rate") {
		t.Errorf("expected status canned answer, got %q", res.Text)
	}
}

func TestHandleDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/OPS:300000203741093"):
			w.WriteHeader(http.StatusNotFound)
		case strings.HasSuffix(r.URL.Path, "/GPS:300000111222333"):
			fmt.Fprint(w, `{
				"OrderKey": "GPS:300000111222333",
				"StatusCode": "OPEN",
				"SubmittedBy": "jsmith",
				"SubmittedDate": "2026-01-12T08:00:00Z",
				"lines": [
					{"LineNumber": 1, "ItemNumber": "AS54888", "OrderedQuantity": 2},
					{"LineNumber": 2, "ItemNumber": "AS54999", "OrderedQuantity": 1}
				]
			}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()

	o := newTestAdapter(t, ts.URL)

	t.Run("summarizes order with lines", func(t *testing.T) {
		res := o.Handle(context.Background(), "show me order GPS:300000111222333")
		if res.Source != model.SourceAPI {
			t.Fatalf("expected api source, got %s (%s)", res.Source, res.Text)
		}
		for _, want := range []string{"Order GPS:300000111222333", "Status: OPEN", "Submitted By: jsmith", "Line 1: AS54888 x2", "Line 2: AS54999 x1"} {
			if !strings.Contains(res.Text, want) {
				t.Errorf("missing %q in %q", want, res.Text)
			}
		}
	})

	t.Run("not found message carries the key", func(t *testing.T) {
		res := o.Handle(context.Background(), "where is order OPS:300000203741093")
		if res.Source != model.SourceError {
			t.Fatalf("expected error source, got %s", res.Source)
		}
		want := "No sales order found for key/id 'OPS:300000203741093'."
		if res.Text != want {
			t.Errorf("expected %q, got %q", want, res.Text)
		}
	})
}

func TestHandleList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [
			{"OrderKey": "A", "StatusCode": "OPEN", "CreatedBy": "u1", "LastUpdateDate": "2026-03-01T00:00:00Z"},
			{"OrderKey": "B", "StatusCode": "OPEN", "CreatedBy": "u2", "LastUpdateDate": "2026-01-01T00:00:00Z"},
			{"OrderKey": "C", "StatusCode": "OPEN", "CreatedBy": "u3", "LastUpdateDate": "2026-02-01T00:00:00Z"},
			{"OrderKey": "D", "StatusCode": "OPEN", "CreatedBy": "u4", "LastUpdateDate": "not-a-date"}
		]}`)
	}))
	defer ts.Close()

	o := newTestAdapter(t, ts.URL)

	res := o.Handle(context.Background(), "list my recent sales orders")
	if res.Source != model.SourceAPI {
		t.Fatalf("expected api source, got %s (%s)", res.Source, res.Text)
	}

	// Latest first, unparsable timestamp last.
	wantOrder := []string{"- A |", "- C |", "- B |", "- D |"}
	last := -1
	for _, marker := range wantOrder {
		idx := strings.Index(res.Text, marker)
		if idx < 0 {
			t.Fatalf("missing %q in %q", marker, res.Text)
		}
		if idx < last {
			t.Errorf("%q appears out of order in %q", marker, res.Text)
		}
		last = idx
	}
}

func TestHandleListLimit(t *testing.T) {
	var gotLimit string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		fmt.Fprint(w, `{"items": [{"OrderKey": "A", "StatusCode": "OPEN", "CreatedBy": "u1", "LastUpdateDate": "2026-03-01T00:00:00Z"}]}`)
	}))
	defer ts.Close()

	client, err := ordersapi.NewClient(ordersapi.Config{URL: ts.URL, Username: "scm", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("configured page size is sent", func(t *testing.T) {
		o := New(client, Config{ListLimit: 25}, advisor.Options{}, &mockLogger{})
		res := o.Handle(context.Background(), "list my recent sales orders")
		if res.Source != model.SourceAPI {
			t.Fatalf("expected api source, got %s (%s)", res.Source, res.Text)
		}
		if gotLimit != "25" {
			t.Errorf("expected limit=25, got %q", gotLimit)
		}
	})

	t.Run("unset page size falls back to default", func(t *testing.T) {
		o := New(client, Config{}, advisor.Options{}, &mockLogger{})
		o.Handle(context.Background(), "list my recent sales orders")
		if gotLimit != "10" {
			t.Errorf("expected limit=10, got %q", gotLimit)
		}
	})
}

func TestHandleDoesNotRetryTerminalErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		query  string
	}{
		{"missing order", http.StatusNotFound, "show me order OPS:300000203741093"},
		{"bad credentials", http.StatusUnauthorized, "list sales orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			client, err := ordersapi.NewClient(ordersapi.Config{URL: ts.URL, Username: "scm", Password: "secret"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			o := New(client, Config{}, advisor.Options{RetryCount: 3}, &mockLogger{})

			res := o.Handle(context.Background(), tt.query)
			if res.Source != model.SourceError {
				t.Fatalf("expected error source, got %s", res.Source)
			}
			if calls != 1 {
				t.Errorf("expected 1 request, got %d", calls)
			}
		})
	}
}

func TestHandleAuthFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	o := newTestAdapter(t, ts.URL)
	res := o.Handle(context.Background(), "list sales orders")
	if res.Source != model.SourceError {
		t.Fatalf("expected error source, got %s", res.Source)
	}
	if !strings.Contains(res.Text, "authentication failed") {
		t.Errorf("expected auth hint, got %q", res.Text)
	}
}

func TestExtractOrderKey(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"status of OPS:300000203741093 please", "OPS:300000203741093"},
		{"look up 300000203741093", "300000203741093"},
		{"list all recent orders", ""},
		{"order 1234 status", ""},
	}
	for _, tt := range tests {
		if got := extractOrderKey(tt.query); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.query, tt.want, got)
		}
	}
}
