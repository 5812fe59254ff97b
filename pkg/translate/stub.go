package translate

import (
	"context"
	"sync"
	"time"
)

// StubConfig configures the stub translator behavior.
type StubConfig struct {
	// ProcessingDelay simulates translation processing time.
	ProcessingDelay time.Duration

	// Dictionary maps source text to translated text per target language.
	// If nil, DefaultDictionary is used. Lookups that miss return
	// "[lang] " prefix + original text.
	Dictionary map[string]map[string]string // [targetLang][sourceText]translatedText
}

// DefaultDictionary returns deterministic fixtures for tests and demos.
func DefaultDictionary() map[string]map[string]string {
	return map[string]map[string]string{
		"es": {
			"Hello world":         "Hola mundo",
			"No text recognized.": "No se reconoció texto.",
			"Good morning":        "Buenos días",
		},
		"fr": {
			"Hello world":         "Bonjour le monde",
			"Hola mundo":          "Bonjour le monde",
			"No text recognized.": "Aucun texte reconnu.",
		},
		"de": {
			"Hello world": "Hallo Welt",
		},
	}
}

// Stub is a deterministic Translator for tests and local development.
type Stub struct {
	config StubConfig

	mu    sync.Mutex
	calls []Translation
}

// NewStub creates a stub translator. A zero config uses the default
// dictionary and no delay.
func NewStub(cfg StubConfig) *Stub {
	if cfg.Dictionary == nil {
		cfg.Dictionary = DefaultDictionary()
	}
	return &Stub{config: cfg}
}

// Translate returns the dictionary entry for text, or a "[lang] text"
// placeholder when the dictionary misses.
func (s *Stub) Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error) {
	if text == "" {
		return Translation{}, ErrEmptyText
	}
	if !Supported(sourceLang) || !Supported(targetLang) {
		return Translation{}, ErrUnsupportedLanguage
	}

	if s.config.ProcessingDelay > 0 {
		select {
		case <-time.After(s.config.ProcessingDelay):
		case <-ctx.Done():
			return Translation{}, ctx.Err()
		}
	}

	translated := "[" + targetLang + "] " + text
	if dict, ok := s.config.Dictionary[targetLang]; ok {
		if hit, ok := dict[text]; ok {
			translated = hit
		}
	}

	result := Translation{
		SourceText:     text,
		TranslatedText: translated,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}

	s.mu.Lock()
	s.calls = append(s.calls, result)
	s.mu.Unlock()

	return result, nil
}

// Close implements Translator.
func (s *Stub) Close() error {
	return nil
}

// Calls returns every translation performed, in order.
func (s *Stub) Calls() []Translation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Translation, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset clears the recorded calls.
func (s *Stub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}
