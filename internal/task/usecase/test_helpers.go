package usecase

import (
	"context"
	"sync"

	"taskgen/internal/notify"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockNotifier records every notification input it receives.
type mockNotifier struct {
	mu     sync.Mutex
	inputs []notify.Input
}

func (m *mockNotifier) NotifyCompletion(ctx context.Context, input notify.Input) notify.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	return notify.Outcome{Status: notify.StatusSuccess, StatusCode: 200}
}

func (m *mockNotifier) NotifyCompletionAsync(ctx context.Context, input notify.Input) <-chan notify.Outcome {
	out := make(chan notify.Outcome, 1)
	out <- m.NotifyCompletion(ctx, input)
	close(out)
	return out
}

func (m *mockNotifier) recorded() []notify.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Input(nil), m.inputs...)
}
