package capture

import (
	"errors"
	"testing"
	"time"

	"github.com/lenslate/lenslate/pkg/translate"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != 5*time.Second {
		t.Errorf("Expected 5s interval, got %v", cfg.Interval)
	}
	if cfg.DisplayTTL != 5*time.Second {
		t.Errorf("Expected 5s display TTL, got %v", cfg.DisplayTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Interval = 0 },
			wantErr: ErrBadInterval,
		},
		{
			name:    "negative display ttl",
			mutate:  func(c *Config) { c.DisplayTTL = -time.Second },
			wantErr: ErrBadDisplayTTL,
		},
		{
			name:    "unknown source language",
			mutate:  func(c *Config) { c.SourceLang = "xx" },
			wantErr: translate.ErrUnsupportedLanguage,
		},
		{
			name:    "unknown target language",
			mutate:  func(c *Config) { c.TargetLang = "" },
			wantErr: translate.ErrUnsupportedLanguage,
		},
		{
			name:   "same source and target",
			mutate: func(c *Config) { c.TargetLang = c.SourceLang },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
