package camera

// Preset names for common configurations.
const (
	PresetLow    = "low"
	PresetMedium = "medium"
	PresetHigh   = "high"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetLow:    LowConfig(),
		PresetMedium: MediumConfig(),
		PresetHigh:   HighConfig(),
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{PresetLow, PresetMedium, PresetHigh}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// LowConfig returns a 640x480 configuration.
// Fastest to capture and upload; small text may not survive it.
func LowConfig() Config {
	return Config{Width: 640, Height: 480, Quality: 80}
}

// MediumConfig returns a 1280x720 configuration.
func MediumConfig() Config {
	return Config{Width: 1280, Height: 720, Quality: 85}
}

// HighConfig returns a 1920x1080 configuration.
// Best recognition accuracy, slower and heavier on the API.
func HighConfig() Config {
	return Config{Width: 1920, Height: 1080, Quality: 90}
}
