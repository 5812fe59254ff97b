// Package camera provides single-frame capture sources for the capture loop.
//
// A Source owns one camera for its whole lifetime: it is opened once, reused
// for every snapshot, and released exactly once. Each Capture produces an
// ephemeral Artifact (a temp JPEG file) owned by a single pipeline run and
// deleted when that run finishes.
package camera

import "context"

// Source is a camera that can snapshot single frames.
type Source interface {
	// Open acquires the device. It returns an explicit error when no
	// camera is available so callers can fail startup instead of spinning.
	Open(ctx context.Context) error

	// Capture takes one frame and writes it to a temp file.
	// The caller owns the returned artifact and must Remove it.
	Capture(ctx context.Context) (*Artifact, error)

	// Close releases the device. Safe to call more than once.
	Close() error
}
