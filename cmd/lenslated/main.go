// lenslated - headless camera translation daemon.
// Captures frames on a schedule, recognizes their text with Gemini,
// translates it with Google Translate, and serves the result to overlay
// clients over HTTP and websocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lenslate/lenslate/internal/config"
	"github.com/lenslate/lenslate/internal/log"
	"github.com/lenslate/lenslate/pkg/camera"
	"github.com/lenslate/lenslate/pkg/capture"
	"github.com/lenslate/lenslate/pkg/ocr"
	"github.com/lenslate/lenslate/pkg/translate"
	"github.com/lenslate/lenslate/pkg/web"
)

func main() {
	cfg := parseFlags()

	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	log.Init(level)

	if err := cfg.Validate(); err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, err := buildSource(cfg)
	if err != nil {
		log.Error("camera setup failed", "error", err)
		os.Exit(1)
	}

	recognizer, err := ocr.NewGemini(ocr.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Logger: log.L(),
	})
	if err != nil {
		log.Error("recognizer setup failed", "error", err)
		os.Exit(1)
	}

	translator, err := buildTranslator(ctx, cfg)
	if err != nil {
		log.Error("translator setup failed", "error", err)
		os.Exit(1)
	}
	defer translator.Close()

	controller, err := capture.New(capture.Config{
		Interval:   cfg.Interval,
		DisplayTTL: cfg.DisplayTTL,
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
		Logger:     log.L(),
	}, source, recognizer, translator)
	if err != nil {
		log.Error("capture setup failed", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(cfg.Port, controller, log.L())
	controller.OnUpdate = server.PublishState

	if err := controller.Initialize(ctx); err != nil {
		log.Error("camera initialization failed", "error", err)
		os.Exit(1)
	}

	server.StartAsync()
	defer server.Shutdown()

	if err := controller.Run(ctx); err != nil {
		log.Error("capture loop failed", "error", err)
		os.Exit(1)
	}
}

// buildSource picks the camera source: a remote websocket feed when
// configured, otherwise a local V4L2 device, discovered if unset.
func buildSource(cfg config.Config) (camera.Source, error) {
	if cfg.MockCamera {
		return camera.NewMock(), nil
	}
	if cfg.RemoteCameraURL != "" {
		return camera.NewRemote(cfg.RemoteCameraURL, log.L()), nil
	}

	camCfg := camera.DefaultConfig()
	if preset := camera.GetPreset(cfg.CameraPreset); preset != nil {
		camCfg = *preset
	} else {
		return nil, fmt.Errorf("unknown camera preset %q (have: %s)",
			cfg.CameraPreset, strings.Join(camera.PresetNames(), ", "))
	}

	// An empty device means Open discovers the first available one.
	camCfg.Device = cfg.CameraDevice

	return camera.NewV4L2(camCfg, log.L()), nil
}

// buildTranslator returns the dictionary stub or the Google provider.
func buildTranslator(ctx context.Context, cfg config.Config) (translate.Translator, error) {
	if cfg.StubTranslate {
		return translate.NewStub(translate.StubConfig{}), nil
	}
	return translate.NewGoogle(ctx, translate.GoogleConfig{
		APIKey:      cfg.GoogleAPIKey,
		AccessToken: cfg.GoogleAccessToken,
		Logger:      log.L(),
	})
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() config.Config {
	cfg := config.DefaultConfig()

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	port := flag.String("port", cfg.Port, "Overlay API listen port")
	device := flag.String("device", "", "V4L2 camera device (default: first available)")
	preset := flag.String("preset", cfg.CameraPreset, "Camera preset: low, medium, high")
	interval := flag.Int("interval", int(cfg.Interval/time.Second), "Capture interval in seconds")
	remote := flag.String("remote-camera", "", "WebSocket URL of a remote camera feed")
	stub := flag.Bool("stub-translate", false, "Use the offline dictionary translator")
	mockCam := flag.Bool("mock-camera", false, "Use a canned-frame camera source")
	source := flag.String("source-lang", cfg.SourceLang, "Source language code")
	target := flag.String("target-lang", cfg.TargetLang, "Target language code")
	flag.Parse()

	cfg.Debug = *debug
	cfg.Port = *port
	cfg.CameraDevice = *device
	cfg.CameraPreset = *preset
	cfg.Interval = time.Duration(*interval) * time.Second
	cfg.RemoteCameraURL = *remote
	cfg.StubTranslate = *stub
	cfg.MockCamera = *mockCam
	cfg.SourceLang = *source
	cfg.TargetLang = *target

	cfg.LoadEnvConfig()
	return cfg
}
