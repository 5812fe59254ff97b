// Package config provides application configuration for lenslate commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default configuration values.
const (
	DefaultPort         = "8090"
	DefaultInterval     = 5 * time.Second
	DefaultDisplayTTL   = 5 * time.Second
	DefaultSourceLang   = "en"
	DefaultTargetLang   = "es"
	DefaultCameraPreset = "medium"
)

// Config holds all configuration for the lenslate daemon.
// Flag parsing is done in cmd/lenslated/main.go; this struct is data only.
type Config struct {
	// Debug enables verbose debug logging.
	Debug bool

	// Port is the overlay API listen port.
	Port string

	// CameraDevice is the V4L2 device path. Empty means discover the
	// first available device.
	CameraDevice string

	// CameraPreset selects a resolution preset: "low", "medium", "high".
	CameraPreset string

	// RemoteCameraURL, when set, uses a WebSocket frame feed instead of a
	// local device.
	RemoteCameraURL string

	// Interval is the capture polling interval.
	Interval time.Duration

	// DisplayTTL is how long a translation stays on the overlay.
	DisplayTTL time.Duration

	// Language pair defaults.
	SourceLang string
	TargetLang string

	// StubTranslate swaps the Google translator for the dictionary stub.
	StubTranslate bool

	// MockCamera swaps the camera for a canned-frame source, for running
	// the daemon on hosts without a device.
	MockCamera bool

	// API keys (typically from environment variables).
	GeminiAPIKey string
	GoogleAPIKey string

	// GoogleAccessToken is an OAuth access token used instead of the API
	// key when set.
	GoogleAccessToken string
}

// DefaultConfig returns sensible defaults for the lenslate daemon.
func DefaultConfig() Config {
	return Config{
		Port:         DefaultPort,
		CameraPreset: DefaultCameraPreset,
		Interval:     DefaultInterval,
		DisplayTTL:   DefaultDisplayTTL,
		SourceLang:   DefaultSourceLang,
		TargetLang:   DefaultTargetLang,
	}
}

// LoadEnvConfig loads configuration values from environment variables.
// Call this after flag parsing to apply environment overrides.
func (c *Config) LoadEnvConfig() {
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	c.GoogleAccessToken = os.Getenv("GOOGLE_ACCESS_TOKEN")

	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if dev := os.Getenv("CAMERA_DEVICE"); dev != "" {
		c.CameraDevice = dev
	}
	if url := os.Getenv("REMOTE_CAMERA_URL"); url != "" {
		c.RemoteCameraURL = url
	}
	if s := os.Getenv("CAPTURE_INTERVAL_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			c.Interval = time.Duration(n) * time.Second
		}
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return &ConfigError{Field: "Interval", Message: "capture interval must be positive"}
	}
	if c.DisplayTTL <= 0 {
		return &ConfigError{Field: "DisplayTTL", Message: "display TTL must be positive"}
	}
	if c.GeminiAPIKey == "" {
		return &ConfigError{Field: "GeminiAPIKey", Message: "GEMINI_API_KEY environment variable is required"}
	}
	if !c.StubTranslate && c.GoogleAPIKey == "" && c.GoogleAccessToken == "" {
		return &ConfigError{Field: "GoogleAPIKey", Message: "GOOGLE_API_KEY or GOOGLE_ACCESS_TOKEN is required unless -stub-translate is set"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}
