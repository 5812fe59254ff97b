package translate

import (
	"context"
	"testing"
)

func TestCatalogHasFiveLanguages(t *testing.T) {
	langs := Catalog()
	if len(langs) != 5 {
		t.Fatalf("Expected 5 catalog entries, got %d", len(langs))
	}
	if langs[0].Code != "en" || langs[0].Name != "English" {
		t.Errorf("Expected English/en first, got %s/%s", langs[0].Name, langs[0].Code)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	langs := Catalog()
	langs[0].Code = "xx"

	fresh := Catalog()
	if fresh[0].Code != "en" {
		t.Error("Catalog must not expose internal state")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		code  string
		name  string
		found bool
	}{
		{"en", "English", true},
		{"es", "Spanish", true},
		{"fr", "French", true},
		{"de", "German", true},
		{"zh", "Chinese", true},
		{"ja", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		lang, ok := Lookup(tt.code)
		if ok != tt.found {
			t.Errorf("Lookup(%q): expected found=%v, got %v", tt.code, tt.found, ok)
			continue
		}
		if ok && lang.Name != tt.name {
			t.Errorf("Lookup(%q): expected %s, got %s", tt.code, tt.name, lang.Name)
		}
	}
}

func TestSameSourceAndTargetAllowed(t *testing.T) {
	// Nothing stops the pair from being the same code on both sides.
	stub := NewStub(StubConfig{})

	result, err := stub.Translate(context.Background(), "Hello world", "en", "en")
	if err != nil {
		t.Fatalf("Translate en->en failed: %v", err)
	}
	if result.TranslatedText == "" {
		t.Error("Expected a result for en->en")
	}
}
