package translate

// Language is one entry in the fixed language catalog.
type Language struct {
	// Name is the English display name, e.g. "German".
	Name string `json:"name"`

	// Code is the ISO 639-1 code, e.g. "de".
	Code string `json:"code"`
}

// Default language pair for a fresh session.
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "es"
)

// catalog is the fixed in-process language table. Source and target are
// selected independently from it; nothing prevents picking the same code
// for both.
var catalog = []Language{
	{Name: "English", Code: "en"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Chinese", Code: "zh"},
}

// Catalog returns the supported languages in display order.
// The returned slice is a copy and safe to modify.
func Catalog() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for a language code.
func Lookup(code string) (Language, bool) {
	for _, l := range catalog {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Supported reports whether a language code is in the catalog.
func Supported(code string) bool {
	_, ok := Lookup(code)
	return ok
}
