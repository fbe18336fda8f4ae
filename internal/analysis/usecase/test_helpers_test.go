package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"vendor-message-analysis/internal/analysis"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warns
}

// mockPrimary counts calls and delegates to fn.
type mockPrimary struct {
	calls atomic.Int32
	fn    func(ctx context.Context, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error)
}

func (m *mockPrimary) Analyze(ctx context.Context, actx analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	m.calls.Add(1)
	return m.fn(ctx, actx)
}

func (m *mockPrimary) count() int {
	return int(m.calls.Load())
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func photographerContext() analysis.AnalysisContext {
	return analysis.AnalysisContext{
		MessageContent: "Can we schedule a call for pricing next week?",
		VendorCategory: "Photographer",
		VendorName:     "Lens & Light",
		ContactID:      "c1",
	}
}

func serviceResult() analysis.MessageAnalysisResult {
	return analysis.MessageAnalysisResult{
		NewTodos: []analysis.DetectedTodo{
			{
				Title:      "Schedule pricing call",
				Category:   "Photographer",
				Priority:   analysis.PriorityHigh,
				SourceText: "schedule a call",
				Confidence: 0.9,
			},
		},
		TodoUpdates:    []analysis.TodoUpdate{},
		CompletedTodos: []analysis.CompletedTodo{},
		Confidence:     0.9,
		AnalysisType:   analysis.TypeNewMessage,
	}
}

func succeeding(r analysis.MessageAnalysisResult) func(context.Context, analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
	return func(context.Context, analysis.AnalysisContext) (analysis.MessageAnalysisResult, error) {
		return r.Clone(), nil
	}
}
