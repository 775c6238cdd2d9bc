package reports

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"enterprise-advisors/internal/advisor"
	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/analytics"
)

func TestHandleMockMode(t *testing.T) {
	r := New(nil, Config{}, advisor.Options{Mock: true}, &mockLogger{})

	res := r.Handle(context.Background(), "export the analytics workbook")
	if res.Source != model.SourceMock {
		t.Errorf("expected mock source, got %s", res.Source)
	}
	if res.Pending != nil || res.Payload != nil {
		t.Error("mock mode must not start an export")
	}
}

func TestHandleLive(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		if user != "oac" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"resourceUri": "%s/exports/exp-7"}`, r.URL.Path)
	}))
	defer ts.Close()

	newAdapter := func(password string) *Reports {
		client, err := analytics.NewClient(analytics.Config{URL: ts.URL, Username: "oac", Password: password})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return New(client, Config{WorkbookID: "wb-1", CanvasID: "snapshot!canvas!1", ReportName: "Absence Workbook Report"}, advisor.Options{}, &mockLogger{})
	}

	t.Run("initiation yields pending export", func(t *testing.T) {
		res := newAdapter("secret").Handle(context.Background(), "export the workbook dashboard")
		if res.Source != model.SourceAPI {
			t.Fatalf("expected api source, got %s (%s)", res.Source, res.Text)
		}
		if res.Pending == nil {
			t.Fatal("expected pending export marker")
		}
		if res.Pending.Job.ExportID != "exp-7" || res.Pending.Job.WorkbookID != "wb-1" {
			t.Errorf("unexpected job %+v", res.Pending.Job)
		}
		if res.Pending.Kind != model.KindPDF {
			t.Errorf("expected pdf kind, got %s", res.Pending.Kind)
		}
		if res.Payload != nil {
			t.Error("pending export must not carry bytes")
		}
	})

	t.Run("auth failure has remediation hint", func(t *testing.T) {
		res := newAdapter("wrong").Handle(context.Background(), "export the workbook")
		if res.Source != model.SourceError {
			t.Fatalf("expected error source, got %s", res.Source)
		}
		if !strings.Contains(res.Text, "authentication failed") {
			t.Errorf("expected auth hint, got %q", res.Text)
		}
		if res.Pending != nil {
			t.Error("failed initiation must not leave a pending marker")
		}
	})
}

func TestExportFormat(t *testing.T) {
	tests := []struct {
		query string
		want  model.ArtifactKind
	}{
		{"export the dashboard as png", model.KindImage},
		{"workbook export to excel", model.KindSpreadsheet},
		{"csv export of the analytics workbook", model.KindCSV},
		{"export the workbook", model.KindPDF},
	}
	for _, tt := range tests {
		if _, kind := exportFormat(tt.query); kind != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.query, tt.want, kind)
		}
	}
}
