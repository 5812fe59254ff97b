// Package translate provides text translation between languages.
//
// The package abstracts translation behind a single Translator interface so
// the capture loop can run against the Google Cloud Translation API in
// production and the dictionary stub in tests and local development.
//
// Example usage:
//
//	tr, _ := translate.NewGoogle(ctx, translate.GoogleConfig{APIKey: os.Getenv("GOOGLE_API_KEY")})
//	defer tr.Close()
//
//	result, _ := tr.Translate(ctx, "Hello world", "en", "es")
//	fmt.Println(result.TranslatedText) // "Hola mundo"
package translate

import "context"

// Translation is the result of a single translation call.
type Translation struct {
	// SourceText is the text that was translated.
	SourceText string `json:"source_text"`

	// TranslatedText is the translated result.
	TranslatedText string `json:"translated_text"`

	// SourceLang is the source language code used.
	SourceLang string `json:"source_lang"`

	// TargetLang is the target language code used.
	TargetLang string `json:"target_lang"`
}

// Translator converts text between languages.
// All implementations must satisfy this interface.
type Translator interface {
	// Translate converts text from the source language to the target
	// language. Both languages are codes from the catalog.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error)

	// Close releases any resources held by the translator.
	Close() error
}
