// Package capture drives the snapshot-recognize-translate loop.
//
// The Controller owns a repeating timer, a busy flag, and the language-pair
// session state. On each tick, if idle and the camera is ready, it runs one
// pipeline: capture a frame, recognize its text, translate it, publish the
// result, and schedule its expiry. At most one pipeline is ever in flight;
// ticks that arrive while one runs are skipped, never queued.
//
// Every stage failure is logged and absorbed at the pipeline boundary. A bad
// capture or network call never stops the loop; the next tick still fires
// and the overlay simply does not update.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lenslate/lenslate/pkg/camera"
	"github.com/lenslate/lenslate/pkg/ocr"
	"github.com/lenslate/lenslate/pkg/translate"
)

// Controller runs the capture loop and owns the session state.
type Controller struct {
	config     Config
	source     camera.Source
	recognizer ocr.Recognizer
	translator translate.Translator
	logger     *slog.Logger

	// OnUpdate, when set, is called with a session snapshot after every
	// state change. Set it before Initialize; it runs on the loop's
	// goroutine and must not block.
	OnUpdate func(Session)

	mu      sync.Mutex
	session Session

	releaseOnce sync.Once
}

// New creates a capture controller. The camera is not touched until
// Initialize is called.
func New(cfg Config, source camera.Source, recognizer ocr.Recognizer, translator translate.Translator) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		config:     cfg,
		source:     source,
		recognizer: recognizer,
		translator: translator,
		logger:     logger.With("component", "capture"),
		session: Session{
			SourceLang: cfg.SourceLang,
			TargetLang: cfg.TargetLang,
		},
	}, nil
}

// Initialize opens the camera. It returns an explicit error when no camera
// is available; the caller decides whether that is fatal.
func (c *Controller) Initialize(ctx context.Context) error {
	if err := c.source.Open(ctx); err != nil {
		return fmt.Errorf("capture: camera init: %w", err)
	}

	c.mu.Lock()
	c.session.CameraReady = true
	snapshot := c.session
	c.mu.Unlock()

	c.logger.Info("camera ready", "interval", c.config.Interval)
	c.notify(snapshot)
	return nil
}

// Run polls until the context is cancelled, then releases the camera
// exactly once. Each tick starts a pipeline run only when the previous one
// has finished; missed ticks are dropped, there is no catch-up.
func (c *Controller) Run(ctx context.Context) error {
	if !c.Snapshot().CameraReady {
		return ErrNotInitialized
	}

	ticker := time.NewTicker(c.config.Interval)
	defer ticker.Stop()
	defer c.release()

	c.logger.Info("capture loop started",
		"interval", c.config.Interval,
		"display_ttl", c.config.DisplayTTL)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("capture loop stopped")
			return nil
		case <-ticker.C:
			go c.Trigger(ctx)
		}
	}
}

// Trigger runs one pipeline if the controller is idle and the camera is
// ready. It returns false when the tick was skipped.
func (c *Controller) Trigger(ctx context.Context) bool {
	if !c.tryBegin() {
		return false
	}
	c.runPipeline(ctx)
	return true
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetLanguage updates one slot of the language pair. Changing the target
// while a translation is held re-translates that held text in place with
// the new pair; repeated target changes therefore compound translations of
// already-translated text instead of going back to the recognized original.
func (c *Controller) SetLanguage(ctx context.Context, slot Slot, code string) error {
	if !translate.Supported(code) {
		return translate.ErrUnsupportedLanguage
	}

	c.mu.Lock()
	switch slot {
	case SlotSource:
		c.session.SourceLang = code
	case SlotTarget:
		c.session.TargetLang = code
	default:
		c.mu.Unlock()
		return ErrUnknownSlot
	}
	held := c.session.LastTranslatedText
	source, target := c.session.SourceLang, c.session.TargetLang
	snapshot := c.session
	c.mu.Unlock()

	c.logger.Info("language changed", "slot", string(slot), "code", code)
	c.notify(snapshot)

	if slot != SlotTarget || held == "" {
		return nil
	}

	result, err := c.translator.Translate(ctx, held, source, target)
	if err != nil {
		c.logger.Warn("re-translation failed", "error", err)
		return nil
	}
	c.setTranslated(result.TranslatedText)
	return nil
}

// tryBegin transitions Idle -> Busy. The mutex stands in for the original
// single-threaded check-then-set; it keeps at most one pipeline in flight.
func (c *Controller) tryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.session.CameraReady || c.session.Busy {
		return false
	}
	c.session.Busy = true
	return true
}

// endRun transitions Busy -> Idle unconditionally.
func (c *Controller) endRun() {
	c.mu.Lock()
	c.session.Busy = false
	c.mu.Unlock()
}

// runPipeline executes one capture/recognize/translate sequence. Failures
// abort the run but never the loop.
func (c *Controller) runPipeline(ctx context.Context) {
	defer c.endRun()

	frame, err := c.source.Capture(ctx)
	if err != nil {
		c.logger.Warn("capture failed", "error", err)
		return
	}
	defer func() {
		// Artifact cleanup is unconditional and best effort.
		if err := frame.Remove(); err != nil {
			c.logger.Debug("artifact cleanup failed", "id", frame.ID, "error", err)
		}
	}()

	recognized, err := c.recognizer.Recognize(ctx, frame.Path())
	if err != nil {
		c.logger.Warn("recognition failed", "error", err)
		return
	}

	text := recognized.Text
	if strings.TrimSpace(text) == "" {
		text = NoTextSentinel
	}

	c.mu.Lock()
	source, target := c.session.SourceLang, c.session.TargetLang
	c.mu.Unlock()

	result, err := c.translator.Translate(ctx, text, source, target)
	if err != nil {
		// Prior displayed text is deliberately left in place.
		c.logger.Warn("translation failed", "source", source, "target", target, "error", err)
		return
	}

	c.logger.Debug("pipeline run complete",
		"artifact", frame.ID,
		"recognized_chars", len(text),
		"translated_chars", len(result.TranslatedText))

	c.setTranslated(result.TranslatedText)
}

// setTranslated publishes a translation and schedules its expiry.
//
// The clear fires a fixed DisplayTTL after this call and is never
// cancelled: a newer translation does not stop an older timer, so a stale
// clear can wipe a result that arrived after it was scheduled.
// TODO: key clears to a run ID so a stale timer cannot wipe a newer result.
func (c *Controller) setTranslated(text string) {
	c.mu.Lock()
	c.session.LastTranslatedText = text
	snapshot := c.session
	c.mu.Unlock()

	c.notify(snapshot)
	time.AfterFunc(c.config.DisplayTTL, c.clearTranslated)
}

// clearTranslated wipes the held translation.
func (c *Controller) clearTranslated() {
	c.mu.Lock()
	c.session.LastTranslatedText = ""
	snapshot := c.session
	c.mu.Unlock()

	c.notify(snapshot)
}

// release shuts the camera exactly once.
func (c *Controller) release() {
	c.releaseOnce.Do(func() {
		if err := c.source.Close(); err != nil {
			c.logger.Warn("camera release failed", "error", err)
		}
		c.mu.Lock()
		c.session.CameraReady = false
		c.mu.Unlock()
	})
}

// notify delivers a snapshot to the OnUpdate callback if one is set.
func (c *Controller) notify(snapshot Session) {
	if c.OnUpdate != nil {
		c.OnUpdate(snapshot)
	}
}
