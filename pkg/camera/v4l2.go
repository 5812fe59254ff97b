package camera

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"
)

// V4L2Source captures frames from a local video device via OpenCV.
type V4L2Source struct {
	config Config
	logger *slog.Logger

	mu        sync.Mutex
	cap       *gocv.VideoCapture
	closeOnce sync.Once
}

// NewV4L2 creates a local camera source. The device is not touched until
// Open is called.
func NewV4L2(cfg Config, logger *slog.Logger) *V4L2Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &V4L2Source{
		config: cfg,
		logger: logger.With("component", "camera.v4l2"),
	}
}

// Open acquires the configured device, discovering one if the config names
// none. Returns ErrNoDevice when the host has no usable camera.
func (s *V4L2Source) Open(ctx context.Context) error {
	if errs := s.config.Validate(); len(errs) > 0 {
		return fmt.Errorf("camera: invalid config: %v", errs)
	}

	device := s.config.Device
	if device == "" {
		found, err := FirstAvailable()
		if err != nil {
			return err
		}
		device = found
	}

	cap, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrNoDevice, device, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return fmt.Errorf("%w: %s did not open", ErrNoDevice, device)
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(s.config.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(s.config.Height))

	s.mu.Lock()
	s.cap = cap
	s.mu.Unlock()

	s.logger.Info("camera opened",
		"device", device,
		"width", s.config.Width,
		"height", s.config.Height)

	return nil
}

// Capture reads one frame, encodes it as JPEG, and writes it to a temp
// artifact owned by the caller.
func (s *V4L2Source) Capture(ctx context.Context) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cap == nil {
		return nil, ErrNotOpen
	}

	img := gocv.NewMat()
	defer img.Close()

	if ok := s.cap.Read(&img); !ok || img.Empty() {
		return nil, ErrCaptureFailed
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, img,
		[]int{int(gocv.IMWriteJpegQuality), s.config.Quality})
	if err != nil {
		return nil, fmt.Errorf("camera: encode frame: %w", err)
	}
	defer buf.Close()

	return NewArtifact(buf.GetBytes())
}

// Close releases the device exactly once.
func (s *V4L2Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cap != nil {
			err = s.cap.Close()
			s.cap = nil
			s.logger.Info("camera released")
		}
	})
	return err
}
