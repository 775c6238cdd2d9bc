package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"enterprise-advisors/pkg/analytics"
)

func TestExportFlow(t *testing.T) {
	var downloadCalls atomic.Int32
	reportBody := []byte("binary-report-content")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "oac" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/exports"):
			var payload map[string]any
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload["format"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprintf(w, `{"resourceUri": "%s/exports/exp-42"}`, r.URL.Path)

		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/exports/exp-42"):
			// Two 404s before the export finishes.
			if downloadCalls.Add(1) < 3 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/pdf")
			w.Write(reportBody)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client, err := analytics.NewClient(analytics.Config{URL: ts.URL, Username: "oac", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := analytics.ExportRequest{
		WorkbookID: "wb-1",
		Name:       "Absence Workbook Report",
		CanvasIDs:  []string{"snapshot!canvas!1"},
		Format:     "pdf",
	}

	t.Run("Initiate Parses Resource URI", func(t *testing.T) {
		id, err := client.InitiateExport(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "exp-42" {
			t.Errorf("expected exp-42, got %q", id)
		}
	})

	t.Run("Download Retries Until Ready", func(t *testing.T) {
		downloadCalls.Store(0)

		for attempt := 1; attempt <= 2; attempt++ {
			_, _, err := client.DownloadExport(context.Background(), "wb-1", "exp-42")
			if !errors.Is(err, analytics.ErrExportNotReady) {
				t.Fatalf("attempt %d: expected ErrExportNotReady, got %v", attempt, err)
			}
		}

		raw, contentType, err := client.DownloadExport(context.Background(), "wb-1", "exp-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(raw, reportBody) {
			t.Errorf("downloaded body mismatch")
		}
		if contentType != "application/pdf" {
			t.Errorf("unexpected content type %q", contentType)
		}
	})

	t.Run("Auth Failure", func(t *testing.T) {
		bad, _ := analytics.NewClient(analytics.Config{URL: ts.URL, Username: "oac", Password: "wrong"})
		_, err := bad.InitiateExport(context.Background(), req)
		if !errors.Is(err, analytics.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
	})
}

func TestExportIDFromExplicitField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"exportId": "exp-99"}`)
	}))
	defer ts.Close()

	client, _ := analytics.NewClient(analytics.Config{URL: ts.URL, Username: "u", Password: "p"})
	id, err := client.InitiateExport(context.Background(), analytics.ExportRequest{WorkbookID: "wb", Format: "pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "exp-99" {
		t.Errorf("expected exp-99, got %q", id)
	}
}
