//go:build integration

package translate_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/lenslate/lenslate/pkg/translate"
)

// TestGoogleIntegration tests the real Cloud Translation API.
// Run with: go test -tags=integration -v ./pkg/translate/...
func TestGoogleIntegration(t *testing.T) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		t.Skip("GOOGLE_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tr, err := translate.NewGoogle(ctx, translate.GoogleConfig{APIKey: apiKey})
	if err != nil {
		t.Fatalf("failed to create translator: %v", err)
	}
	defer tr.Close()

	result, err := tr.Translate(ctx, "Hello world", "en", "es")
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	t.Logf("en->es: %q", result.TranslatedText)

	if result.TranslatedText == "" {
		t.Error("expected non-empty translation")
	}
	if result.SourceText != "Hello world" {
		t.Errorf("expected source text preserved, got %q", result.SourceText)
	}
}
