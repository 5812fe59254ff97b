package translate

import (
	"context"
	"sync"
)

// Mock implements Translator for testing.
type Mock struct {
	// TranslateFunc is called when Translate is invoked.
	TranslateFunc func(ctx context.Context, text, sourceLang, targetLang string) (Translation, error)

	// CloseFunc is called when Close is invoked.
	CloseFunc func() error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records a Translate invocation.
type MockCall struct {
	Text       string
	SourceLang string
	TargetLang string
}

// NewMock creates a mock translator that echoes its input prefixed with the
// target language code.
func NewMock() *Mock {
	return &Mock{
		TranslateFunc: func(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
			return Translation{
				SourceText:     text,
				TranslatedText: "[" + targetLang + "] " + text,
				SourceLang:     sourceLang,
				TargetLang:     targetLang,
			}, nil
		},
	}
}

// Translate calls TranslateFunc and records the call.
func (m *Mock) Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Text: text, SourceLang: sourceLang, TargetLang: targetLang})
	m.mu.Unlock()

	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, sourceLang, targetLang)
	}
	return Translation{}, WrapError("mock", ErrNoTranslation)
}

// Close calls CloseFunc if set.
func (m *Mock) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Calls returns every recorded Translate invocation, in order.
func (m *Mock) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of Translate invocations.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
