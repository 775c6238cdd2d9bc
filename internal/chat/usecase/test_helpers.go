package usecase

import (
	"context"

	"enterprise-advisors/internal/model"
	"enterprise-advisors/internal/router"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock router returning a fixed decision
type mockRouter struct {
	decision router.Decision
}

func (m *mockRouter) Route(ctx context.Context, query string) router.Decision {
	return m.decision
}

// Mock advisor driven by a handle function
type mockAdvisor struct {
	name   string
	intent model.Intent
	handle func(ctx context.Context, query string) model.AdvisorResult
}

func (m *mockAdvisor) Name() string        { return m.name }
func (m *mockAdvisor) Intent() model.Intent { return m.intent }
func (m *mockAdvisor) Handle(ctx context.Context, query string) model.AdvisorResult {
	return m.handle(ctx, query)
}
