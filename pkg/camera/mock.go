package camera

import (
	"context"
	"sync"
)

// Mock implements Source for testing.
type Mock struct {
	// OpenFunc is called when Open is invoked. Nil means success.
	OpenFunc func(ctx context.Context) error

	// CaptureFunc is called when Capture is invoked.
	CaptureFunc func(ctx context.Context) (*Artifact, error)

	mu         sync.Mutex
	opens      int
	captures   int
	closeCalls int
}

// NewMock creates a mock source whose Capture writes a tiny artifact.
func NewMock() *Mock {
	return &Mock{
		CaptureFunc: func(ctx context.Context) (*Artifact, error) {
			return NewArtifact([]byte("mock-frame"))
		},
	}
}

// Open calls OpenFunc and records the call.
func (m *Mock) Open(ctx context.Context) error {
	m.mu.Lock()
	m.opens++
	m.mu.Unlock()

	if m.OpenFunc != nil {
		return m.OpenFunc(ctx)
	}
	return nil
}

// Capture calls CaptureFunc and records the call.
func (m *Mock) Capture(ctx context.Context) (*Artifact, error) {
	m.mu.Lock()
	m.captures++
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	return nil, ErrCaptureFailed
}

// Close records the call.
func (m *Mock) Close() error {
	m.mu.Lock()
	m.closeCalls++
	m.mu.Unlock()
	return nil
}

// OpenCount returns the number of Open invocations.
func (m *Mock) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens
}

// CaptureCount returns the number of Capture invocations.
func (m *Mock) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captures
}

// CloseCount returns the number of Close invocations.
func (m *Mock) CloseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}
