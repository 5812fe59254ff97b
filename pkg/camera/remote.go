package camera

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Remote frame feed timeouts.
const (
	remoteHandshakeTimeout = 10 * time.Second
	remoteFrameTimeout     = 5 * time.Second
)

// frameRequest asks the companion device for one snapshot.
type frameRequest struct {
	Type string `json:"type"`
}

// RemoteSource captures frames from a companion device (typically a phone
// camera app) over a WebSocket frame feed. Each Capture sends a frame
// request and waits for one binary JPEG message back.
type RemoteSource struct {
	url    string
	logger *slog.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	closeOnce sync.Once
}

// NewRemote creates a remote camera source for the given ws:// URL.
func NewRemote(url string, logger *slog.Logger) *RemoteSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteSource{
		url:    url,
		logger: logger.With("component", "camera.remote"),
	}
}

// Open dials the frame feed.
func (s *RemoteSource) Open(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: remoteHandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrNoDevice, s.url, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("remote camera connected", "url", s.url)
	return nil
}

// Capture requests a frame and writes the returned JPEG to a temp artifact.
func (s *RemoteSource) Capture(ctx context.Context) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, ErrNotOpen
	}

	deadline := time.Now().Add(remoteFrameTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	s.conn.SetWriteDeadline(deadline)
	if err := s.conn.WriteJSON(frameRequest{Type: "frame"}); err != nil {
		return nil, fmt.Errorf("%w: request frame: %v", ErrCaptureFailed, err)
	}

	// The feed may interleave text keepalives; wait for the next binary
	// message, which is always a whole JPEG.
	s.conn.SetReadDeadline(deadline)
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("%w: read frame: %v", ErrCaptureFailed, err)
		}
		if msgType == websocket.BinaryMessage {
			if len(data) == 0 {
				return nil, ErrCaptureFailed
			}
			return NewArtifact(data)
		}
	}
}

// Close shuts the connection exactly once.
func (s *RemoteSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.conn != nil {
			s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			err = s.conn.Close()
			s.conn = nil
			s.logger.Info("remote camera disconnected")
		}
	})
	return err
}
