package ocr

import (
	"context"
	"sync"
)

// Mock implements Recognizer for testing.
type Mock struct {
	// RecognizeFunc is called when Recognize is invoked.
	RecognizeFunc func(ctx context.Context, imagePath string) (Result, error)

	mu    sync.Mutex
	calls []string
}

// NewMock creates a mock recognizer that returns fixed text.
func NewMock(text string) *Mock {
	return &Mock{
		RecognizeFunc: func(ctx context.Context, imagePath string) (Result, error) {
			return Result{Text: text}, nil
		},
	}
}

// Recognize calls RecognizeFunc and records the image path.
func (m *Mock) Recognize(ctx context.Context, imagePath string) (Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, imagePath)
	m.mu.Unlock()

	if m.RecognizeFunc != nil {
		return m.RecognizeFunc(ctx, imagePath)
	}
	return Result{}, nil
}

// Calls returns the image paths passed to Recognize, in order.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of Recognize invocations.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
