package camera

import "errors"

// Sentinel errors for common error conditions.
var (
	// ErrNoDevice is returned when no camera device is available.
	ErrNoDevice = errors.New("camera: no camera device available")

	// ErrNotOpen is returned when capturing from a source that is not open.
	ErrNotOpen = errors.New("camera: source not open")

	// ErrCaptureFailed is returned when a frame could not be read.
	ErrCaptureFailed = errors.New("camera: frame capture failed")
)
