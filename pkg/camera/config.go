package camera

// Config holds capture configuration for a camera source.
type Config struct {
	// Device is the V4L2 device path, e.g. /dev/video0.
	// Empty means discover the first available device at Open.
	Device string `json:"device"`

	// Width and Height are the requested frame size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Quality is the JPEG quality 1-100.
	Quality int `json:"quality"`
}

// DefaultConfig returns the medium resolution preset, the balance the
// capture loop runs with: big enough for legible text, cheap to upload.
func DefaultConfig() Config {
	return MediumConfig()
}

// Validate checks that the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Width < 160 || c.Width > 4096 {
		errors = append(errors, "width must be between 160 and 4096")
	}
	if c.Height < 120 || c.Height > 2160 {
		errors = append(errors, "height must be between 120 and 2160")
	}
	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}

	return errors
}
