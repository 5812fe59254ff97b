package camera

import "testing"

func TestDefaultConfigIsMedium(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("Expected 1280x720 medium default, got %dx%d", cfg.Width, cfg.Height)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config must validate, got %v", errs)
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets() {
		if errs := cfg.Validate(); len(errs) != 0 {
			t.Errorf("Preset %s failed validation: %v", name, errs)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(PresetHigh)
	if cfg == nil {
		t.Fatal("Expected high preset")
	}
	if cfg.Width != 1920 {
		t.Errorf("Expected 1920 width for high, got %d", cfg.Width)
	}

	if GetPreset("ultra") != nil {
		t.Error("Expected nil for unknown preset")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 720, Quality: 85}},
		{"huge height", Config{Width: 1280, Height: 9999, Quality: 85}},
		{"zero quality", Config{Width: 1280, Height: 720, Quality: 0}},
		{"quality over 100", Config{Width: 1280, Height: 720, Quality: 101}},
	}

	for _, tt := range tests {
		if errs := tt.cfg.Validate(); len(errs) == 0 {
			t.Errorf("%s: expected validation errors", tt.name)
		}
	}
}
