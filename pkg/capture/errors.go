package capture

import "errors"

// Sentinel errors for common error conditions.
var (
	// ErrBadInterval is returned for a non-positive polling interval.
	ErrBadInterval = errors.New("capture: polling interval must be positive")

	// ErrBadDisplayTTL is returned for a non-positive display TTL.
	ErrBadDisplayTTL = errors.New("capture: display TTL must be positive")

	// ErrUnknownSlot is returned for a language slot other than
	// source or target.
	ErrUnknownSlot = errors.New("capture: unknown language slot")

	// ErrNotInitialized is returned when polling starts before the
	// camera opened.
	ErrNotInitialized = errors.New("capture: camera not initialized")
)
