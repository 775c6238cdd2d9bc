package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"enterprise-advisors/internal/artifact"
	"enterprise-advisors/internal/chat"
	"enterprise-advisors/internal/middleware"
	"enterprise-advisors/internal/model"
	pkgResponse "enterprise-advisors/pkg/response"
)

func newTestEngine(uc chat.UseCase, raw *artifact.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := middleware.New(&mockLogger{}, middleware.Config{})
	MapRoutes(engine.Group("/api/v1"), New(&mockLogger{}, uc, raw), mw)
	return engine
}

func postChat(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestProcessChat(t *testing.T) {
	uc := &mockUseCase{
		process: func(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
			if sc.SessionID != "s-42" {
				t.Errorf("expected session id s-42, got %q", sc.SessionID)
			}
			return chat.ProcessOutput{
				SessionID:     "s-42",
				RoutedIntents: []model.Intent{model.IntentHR},
				RoutingSource: "keywords",
				Message:       "Here's what I found: 20 days PTO.",
			}, nil
		},
	}
	engine := newTestEngine(uc, nil)

	w := postChat(t, engine, `{"prompt":"leave policy","session_id":"s-42"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp pkgResponse.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["session_id"] != "s-42" {
		t.Errorf("unexpected session_id %v", data["session_id"])
	}
	if data["routing_source"] != "keywords" {
		t.Errorf("unexpected routing_source %v", data["routing_source"])
	}
	intents, _ := data["intents"].([]interface{})
	if len(intents) != 1 || intents[0] != "hr" {
		t.Errorf("unexpected intents %v", data["intents"])
	}
}

func TestProcessChatValidation(t *testing.T) {
	uc := &mockUseCase{
		process: func(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
			t.Fatal("use case must not be called for invalid bodies")
			return chat.ProcessOutput{}, nil
		},
	}
	engine := newTestEngine(uc, nil)

	tcs := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"prompt":`},
		{name: "missing prompt", body: `{}`},
		{name: "blank prompt", body: `{"prompt":"   "}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := postChat(t, engine, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGetArtifact(t *testing.T) {
	uc := &mockUseCase{
		artifact: func(ctx context.Context, sc model.Scope, id string) (chat.ArtifactOutput, error) {
			if id != "a-1" {
				t.Errorf("unexpected artifact id %q", id)
			}
			return chat.ArtifactOutput{
				Artifact: model.Artifact{
					ID:       "a-1",
					Kind:     model.KindPDF,
					Status:   model.StatusReady,
					Advisor:  "Finance Advisor",
					Filename: "finance_advisor_20260101_000000.pdf",
				},
				Handle: &model.DownloadHandle{
					ArtifactID: "a-1",
					URL:        "http://localhost/api/v1/artifacts/raw?key=x",
					ExpiresIn:  15 * time.Minute,
				},
			}, nil
		},
	}
	engine := newTestEngine(uc, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/artifacts/a-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp pkgResponse.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]interface{})
	if data["status"] != "ready" {
		t.Errorf("unexpected status %v", data["status"])
	}
	if data["download_url"] == "" || data["download_url"] == nil {
		t.Error("expected download_url for ready artifact")
	}
	if data["expires_in_seconds"] != float64(900) {
		t.Errorf("unexpected expires_in_seconds %v", data["expires_in_seconds"])
	}
}

func TestGetArtifactNotFound(t *testing.T) {
	uc := &mockUseCase{
		artifact: func(ctx context.Context, sc model.Scope, id string) (chat.ArtifactOutput, error) {
			return chat.ArtifactOutput{}, chat.ErrArtifactNotFound
		},
	}
	engine := newTestEngine(uc, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/artifacts/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDownloadRaw(t *testing.T) {
	store := artifact.NewMemoryStore("http://localhost:8080")
	ctx := context.Background()
	if err := store.Put(ctx, "artifact/a-1.pdf", []byte("%PDF-1.4"), "application/pdf"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	signed, err := store.Presign(ctx, "artifact/a-1.pdf", "report.pdf", 15*time.Minute)
	if err != nil {
		t.Fatalf("presign failed: %v", err)
	}

	engine := newTestEngine(&mockUseCase{}, store)

	u, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("bad signed url: %v", err)
	}

	t.Run("valid signature serves bytes", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, u.RequestURI(), nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Body.String() != "%PDF-1.4" {
			t.Error("served bytes differ from stored bytes")
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "report.pdf") {
			t.Errorf("unexpected content disposition %q", cd)
		}
	})

	t.Run("tampered signature rejected", func(t *testing.T) {
		q := u.Query()
		q.Set("signature", "deadbeef")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, u.Path+"?"+q.Encode(), nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("no raw store configured", func(t *testing.T) {
		bare := newTestEngine(&mockUseCase{}, nil)
		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, u.RequestURI(), nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
