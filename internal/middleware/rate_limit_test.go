package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)    {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)   {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimitEnforced(t *testing.T) {
	// 60/min is one token per second with burst 6.
	mw := New(&mockLogger{}, Config{RateLimitPerMin: 60})
	r := newTestRouter(mw)

	var limited bool
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected 429 after burst exhausted")
	}
}

func TestRateLimitPerClient(t *testing.T) {
	mw := New(&mockLogger{}, Config{RateLimitPerMin: 60})
	r := newTestRouter(mw)

	// Exhaust one client's budget.
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", "10.0.0.2")
		r.ServeHTTP(w, req)
	}

	// A different client still passes.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", "10.0.0.3")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected fresh client to pass, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(&mockLogger{}, Config{RateLimitPerMin: 0})
	r := newTestRouter(mw)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d blocked with limiting disabled: %d", i, w.Code)
		}
	}
}

func TestExtractIP(t *testing.T) {
	tcs := []struct {
		name   string
		set    func(r *http.Request)
		expect string
	}{
		{
			name:   "x-forwarded-for first hop",
			set:    func(r *http.Request) { r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8") },
			expect: "1.2.3.4",
		},
		{
			name:   "x-real-ip",
			set:    func(r *http.Request) { r.Header.Set("X-Real-IP", "9.9.9.9") },
			expect: "9.9.9.9",
		},
		{
			name:   "remote addr fallback",
			set:    func(r *http.Request) { r.RemoteAddr = "192.168.1.7:4312" },
			expect: "192.168.1.7",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.set(req)
			if got := extractIP(req); got != tc.expect {
				t.Errorf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}
