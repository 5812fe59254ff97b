package capture

import (
	"log/slog"
	"time"

	"github.com/lenslate/lenslate/pkg/translate"
)

// Config holds all tunable parameters for the capture loop.
type Config struct {
	// Interval is how often the loop polls for a new frame.
	Interval time.Duration

	// DisplayTTL is how long a translation stays held before the
	// scheduled clear wipes it.
	DisplayTTL time.Duration

	// SourceLang and TargetLang are the initial language pair.
	// Both must be catalog codes; they may be equal.
	SourceLang string
	TargetLang string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the recommended capture loop configuration.
func DefaultConfig() Config {
	return Config{
		Interval:   5 * time.Second,
		DisplayTTL: 5 * time.Second,
		SourceLang: translate.DefaultSourceLang,
		TargetLang: translate.DefaultTargetLang,
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return ErrBadInterval
	}
	if c.DisplayTTL <= 0 {
		return ErrBadDisplayTTL
	}
	if !translate.Supported(c.SourceLang) || !translate.Supported(c.TargetLang) {
		return translate.ErrUnsupportedLanguage
	}
	return nil
}
